package service

import (
	"context"
	"time"

	"github.com/regportal/backend/internal/config"
	"github.com/regportal/backend/internal/domain"
	"github.com/regportal/backend/internal/store"
	"github.com/regportal/backend/internal/validation"
	"github.com/regportal/backend/pkg/auth"
)

type Services struct {
	Registration Registration
	Auth         Auth
	Admin        Admin
}

type Deps struct {
	Config       *config.Config
	Store        store.Store
	Engine       *validation.Engine
	TokenManager auth.TokenManager
	Notifier     ApprovalNotifier
}

func NewServices(deps Deps) *Services {
	notifier := deps.Notifier
	if notifier == nil {
		notifier = newEmailService(deps.Config.Email)
	}

	return &Services{
		Registration: newRegistrationService(deps.Store, deps.Engine),
		Auth:         newAuthService(deps.Store, deps.TokenManager),
		Admin:        newAdminService(deps.Store, deps.Config.Admin, notifier),
	}
}

type Registration interface {
	// Register validates the form against the schema selected by its
	// userType and appends the record with approval status Pending.
	// Validation failures come back as recoverable field errors with no
	// store mutation.
	Register(ctx context.Context, form validation.Form) (*domain.UserRecord, validation.FieldErrors, error)
}

// LoginResult is the routing decision for a successful login.
type LoginResult struct {
	Route       domain.Route
	AccessToken string
	AccessTTL   time.Duration
}

type Auth interface {
	Login(ctx context.Context, userName string, password string) (*LoginResult, error)
}

// ReviewItem is one row of the admin's filtered view; Index is the position
// within that view, not within the underlying store.
type ReviewItem struct {
	Index  int               `json:"index"`
	Record domain.UserRecord `json:"record"`
}

type Admin interface {
	ListPending(ctx context.Context) ([]ReviewItem, error)
	ToggleApproval(ctx context.Context, filteredIndex int) (*domain.UserRecord, error)
	EnsureAdminSeed(ctx context.Context) error
}

// ApprovalNotifier delivers the fire-and-forget "account approved" notice.
type ApprovalNotifier interface {
	NotifyApproved(ctx context.Context, rec domain.UserRecord)
}
