package service

import (
	"context"
	"fmt"

	"github.com/regportal/backend/internal/domain"
	"github.com/regportal/backend/internal/store"
	"github.com/regportal/backend/pkg/auth"
)

type authService struct {
	store        store.Store
	tokenManager auth.TokenManager
}

func newAuthService(recordStore store.Store, tokenManager auth.TokenManager) *authService {
	return &authService{
		store:        recordStore,
		tokenManager: tokenManager,
	}
}

func (s *authService) Login(ctx context.Context, userName string, password string) (*LoginResult, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		// An unavailable store degrades to an empty record set so the
		// caller sees the same generic failure as a wrong password.
		records = nil
	}

	var match *domain.UserRecord
	for i := range records {
		if records[i].UserName == userName && records[i].Password == password {
			match = &records[i]
			break
		}
	}

	if match == nil {
		return nil, ErrInvalidCredentials
	}

	if match.UserType == domain.UserTypeAdmin {
		// Admin records are seeded out-of-band and skip approval gating.
		token, ttl, err := s.tokenManager.NewJWT(match.ID, auth.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("generate admin token failed: %w", err)
		}
		return &LoginResult{Route: domain.RouteAdminReview, AccessToken: token, AccessTTL: ttl}, nil
	}

	if match.IsApproved != domain.ApprovalApproved {
		return nil, ErrInvalidCredentials
	}

	token, ttl, err := s.tokenManager.NewJWT(match.ID, "user")
	if err != nil {
		return nil, fmt.Errorf("generate user token failed: %w", err)
	}

	return &LoginResult{Route: domain.RouteDashboard, AccessToken: token, AccessTTL: ttl}, nil
}
