package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/regportal/backend/internal/config"
	"github.com/regportal/backend/internal/domain"
	"github.com/regportal/backend/internal/store"
)

type adminService struct {
	store    store.Store
	seed     config.AdminSeed
	notifier ApprovalNotifier
}

func newAdminService(recordStore store.Store, seed config.AdminSeed, notifier ApprovalNotifier) *adminService {
	return &adminService{
		store:    recordStore,
		seed:     seed,
		notifier: notifier,
	}
}

// ListPending returns the review view: business and endUser records in
// store order, each carrying its index within this filtered view. Admin
// records never appear.
func (s *adminService) ListPending(ctx context.Context) ([]ReviewItem, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		// Same soft-failure contract as login: no data means an empty view.
		return []ReviewItem{}, nil
	}

	view := make([]ReviewItem, 0, len(records))
	for _, rec := range records {
		if !rec.UserType.Registerable() {
			continue
		}
		view = append(view, ReviewItem{Index: len(view), Record: rec})
	}
	return view, nil
}

// ToggleApproval flips the approval status of the record at the given
// position in the filtered view. The store update patches that one record
// by identity, so records outside the view and the store's ordering are
// untouched.
func (s *adminService) ToggleApproval(ctx context.Context, filteredIndex int) (*domain.UserRecord, error) {
	view, err := s.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	if filteredIndex < 0 || filteredIndex >= len(view) {
		return nil, ErrRecordNotFound
	}

	rec := view[filteredIndex].Record
	rec.IsApproved = rec.IsApproved.Toggle()

	if err := s.store.UpdateApproval(ctx, rec.ID, rec.IsApproved); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("update approval failed: %w", err)
	}

	if rec.IsApproved == domain.ApprovalApproved {
		s.notifier.NotifyApproved(ctx, rec)
	}

	return &rec, nil
}

// EnsureAdminSeed creates the configured admin record when the store has
// none. Registration never creates admins, so without this (or some other
// out-of-band seeding) the admin review surface is unreachable.
func (s *adminService) EnsureAdminSeed(ctx context.Context) error {
	if s.seed.Password == "" {
		return nil
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load records failed: %w", err)
	}
	for _, rec := range records {
		if rec.UserType == domain.UserTypeAdmin {
			return nil
		}
	}

	recordID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate admin id failed: %w", err)
	}

	admin := domain.UserRecord{
		ID:         recordID,
		UserType:   domain.UserTypeAdmin,
		UserName:   s.seed.UserName,
		Password:   s.seed.Password,
		Email:      s.seed.Email,
		IsApproved: domain.ApprovalApproved,
		CreatedAt:  time.Now(),
	}

	if err := s.store.Append(ctx, admin); err != nil {
		// A concurrent instance may have seeded first.
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil
		}
		return fmt.Errorf("append admin record failed: %w", err)
	}

	return nil
}
