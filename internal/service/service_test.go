package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/regportal/backend/internal/config"
	"github.com/regportal/backend/internal/domain"
	"github.com/regportal/backend/internal/store"
	"github.com/regportal/backend/internal/validation"
	"github.com/regportal/backend/pkg/auth"
)

type stubTokenManager struct{}

func (stubTokenManager) NewJWT(_ uuid.UUID, role string) (string, time.Duration, error) {
	return "token-" + role, time.Minute, nil
}

func (stubTokenManager) Parse(string) (*auth.Claims, error) {
	return nil, errors.New("not implemented")
}

type stubNotifier struct {
	approved []domain.UserRecord
}

func (n *stubNotifier) NotifyApproved(_ context.Context, rec domain.UserRecord) {
	n.approved = append(n.approved, rec)
}

type unavailableStore struct{}

func (unavailableStore) Load(context.Context) ([]domain.UserRecord, error) {
	return nil, errors.New("store unavailable")
}

func (unavailableStore) Append(context.Context, domain.UserRecord) error {
	return errors.New("store unavailable")
}

func (unavailableStore) UpdateApproval(context.Context, uuid.UUID, domain.ApprovalStatus) error {
	return errors.New("store unavailable")
}

func newTestServices(t *testing.T, recordStore store.Store, seed config.AdminSeed) (*Services, *stubNotifier) {
	t.Helper()

	engine, err := validation.NewEngine()
	require.NoError(t, err)

	notifier := &stubNotifier{}
	services := NewServices(Deps{
		Config:       &config.Config{Admin: seed},
		Store:        recordStore,
		Engine:       engine,
		TokenManager: stubTokenManager{},
		Notifier:     notifier,
	})
	return services, notifier
}

func businessForm(userName string) validation.Form {
	return validation.Form{
		UserType:        "business",
		FirstName:       "Alice",
		LastName:        "Smith",
		Email:           "alice@example.com",
		BusinessName:    "Acme Trading Company",
		BusinessType:    "Private Limited",
		Address:         "221B Baker Street, Marylebone, London",
		Country:         "UK",
		UserName:        userName,
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
	}
}

func endUserForm(userName string) validation.Form {
	dob := time.Now().AddDate(-30, 0, 0)
	return validation.Form{
		UserType:        "endUser",
		FirstName:       "Bob",
		LastName:        "Jones",
		Email:           "bob@example.com",
		BusinessEstDate: &dob,
		Address:         "42 Long Avenue, Somewhere District, Toronto",
		Country:         "Canada",
		UserName:        userName,
		Password:        "Secret99",
		ConfirmPassword: "Secret99",
	}
}
