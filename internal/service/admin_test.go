package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regportal/backend/internal/config"
	"github.com/regportal/backend/internal/domain"
	"github.com/regportal/backend/internal/store"
)

func TestListPendingExcludesAdminRecords(t *testing.T) {
	ctx := context.Background()
	recordStore := store.NewMemoryStore()
	seed := config.AdminSeed{UserName: "admin", Password: "RootPass1"}
	services, _ := newTestServices(t, recordStore, seed)
	require.NoError(t, services.Admin.EnsureAdminSeed(ctx))

	_, fieldErrs, err := services.Registration.Register(ctx, businessForm("alice"))
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	_, fieldErrs, err = services.Registration.Register(ctx, endUserForm("bob"))
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	view, err := services.Admin.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, view, 2)

	for _, item := range view {
		assert.NotEqual(t, domain.UserTypeAdmin, item.Record.UserType)
	}

	// Indices are positions within the filtered view, not the store. The
	// admin record sits at store position 0 here.
	assert.Equal(t, 0, view[0].Index)
	assert.Equal(t, "alice", view[0].Record.UserName)
	assert.Equal(t, 1, view[1].Index)
	assert.Equal(t, "bob", view[1].Record.UserName)
}

func TestToggleApprovalTwiceRoundTrips(t *testing.T) {
	ctx := context.Background()
	recordStore := store.NewMemoryStore()
	services, _ := newTestServices(t, recordStore, config.AdminSeed{})

	_, fieldErrs, err := services.Registration.Register(ctx, businessForm("alice"))
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	first, err := services.Admin.ToggleApproval(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalApproved, first.IsApproved)

	second, err := services.Admin.ToggleApproval(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalPending, second.IsApproved)

	records, err := recordStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalPending, records[0].IsApproved)
}

func TestToggleApprovalPreservesRecordsOutsideView(t *testing.T) {
	ctx := context.Background()
	recordStore := store.NewMemoryStore()
	seed := config.AdminSeed{UserName: "admin", Password: "RootPass1"}
	services, _ := newTestServices(t, recordStore, seed)
	require.NoError(t, services.Admin.EnsureAdminSeed(ctx))

	_, fieldErrs, err := services.Registration.Register(ctx, businessForm("alice"))
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	// Filtered index 0 is alice; the admin record at store position 0 must
	// survive the toggle untouched and in place.
	_, err = services.Admin.ToggleApproval(ctx, 0)
	require.NoError(t, err)

	records, err := recordStore.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.UserTypeAdmin, records[0].UserType)
	assert.Equal(t, domain.ApprovalApproved, records[0].IsApproved)
	assert.Equal(t, "alice", records[1].UserName)
	assert.Equal(t, domain.ApprovalApproved, records[1].IsApproved)
}

func TestToggleApprovalOutOfRange(t *testing.T) {
	ctx := context.Background()
	services, _ := newTestServices(t, store.NewMemoryStore(), config.AdminSeed{})

	_, err := services.Admin.ToggleApproval(ctx, 0)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = services.Admin.ToggleApproval(ctx, -1)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestToggleApprovalNotifiesOnApproveOnly(t *testing.T) {
	ctx := context.Background()
	recordStore := store.NewMemoryStore()
	services, notifier := newTestServices(t, recordStore, config.AdminSeed{})

	_, fieldErrs, err := services.Registration.Register(ctx, businessForm("alice"))
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	_, err = services.Admin.ToggleApproval(ctx, 0)
	require.NoError(t, err)
	require.Len(t, notifier.approved, 1)
	assert.Equal(t, "alice", notifier.approved[0].UserName)

	// Flipping back to Pending sends nothing.
	_, err = services.Admin.ToggleApproval(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, notifier.approved, 1)
}

func TestEnsureAdminSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds once", func(t *testing.T) {
		recordStore := store.NewMemoryStore()
		seed := config.AdminSeed{UserName: "admin", Password: "RootPass1", Email: "root@example.com"}
		services, _ := newTestServices(t, recordStore, seed)

		require.NoError(t, services.Admin.EnsureAdminSeed(ctx))
		require.NoError(t, services.Admin.EnsureAdminSeed(ctx))

		records, err := recordStore.Load(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.UserTypeAdmin, records[0].UserType)
		assert.Equal(t, domain.ApprovalApproved, records[0].IsApproved)
	})

	t.Run("skipped without password", func(t *testing.T) {
		recordStore := store.NewMemoryStore()
		services, _ := newTestServices(t, recordStore, config.AdminSeed{UserName: "admin"})

		require.NoError(t, services.Admin.EnsureAdminSeed(ctx))

		records, err := recordStore.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

// Full flow: register, approve, log in, land on the dashboard.
func TestRegisterApproveLoginFlow(t *testing.T) {
	ctx := context.Background()
	recordStore := store.NewMemoryStore()
	seed := config.AdminSeed{UserName: "admin", Password: "RootPass1"}
	services, _ := newTestServices(t, recordStore, seed)
	require.NoError(t, services.Admin.EnsureAdminSeed(ctx))

	_, fieldErrs, err := services.Registration.Register(ctx, businessForm("alice"))
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	// Not approved yet: generic failure.
	_, err = services.Auth.Login(ctx, "alice", "Passw0rd")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	adminResult, err := services.Auth.Login(ctx, "admin", "RootPass1")
	require.NoError(t, err)
	require.Equal(t, domain.RouteAdminReview, adminResult.Route)

	view, err := services.Admin.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, view, 1)

	_, err = services.Admin.ToggleApproval(ctx, view[0].Index)
	require.NoError(t, err)

	result, err := services.Auth.Login(ctx, "alice", "Passw0rd")
	require.NoError(t, err)
	assert.Equal(t, domain.RouteDashboard, result.Route)
	assert.NotEmpty(t, result.AccessToken)
}
