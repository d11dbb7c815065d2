package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regportal/backend/internal/config"
	"github.com/regportal/backend/internal/domain"
	"github.com/regportal/backend/internal/service"
	"github.com/regportal/backend/internal/store"
	"github.com/regportal/backend/internal/validation"
	"github.com/regportal/backend/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.Services) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Auth:  config.AuthConfig{JWT: config.JWTConfig{AccessTokenTTL: time.Minute, SigningKey: "test-signing-key"}},
		Admin: config.AdminSeed{UserName: "admin", Password: "RootPass1"},
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	require.NoError(t, err)

	engine, err := validation.NewEngine()
	require.NoError(t, err)

	services := service.NewServices(service.Deps{
		Config:       cfg,
		Store:        store.NewMemoryStore(),
		Engine:       engine,
		TokenManager: tokenManager,
		Notifier:     noopNotifier{},
	})
	require.NoError(t, services.Admin.EnsureAdminSeed(context.Background()))

	router := gin.New()
	h := NewHandler(services, tokenManager, cfg)
	h.Init(router.Group("/api"))

	return router, services
}

type noopNotifier struct{}

func (noopNotifier) NotifyApproved(context.Context, domain.UserRecord) {}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validRegistrationBody() map[string]any {
	return map[string]any{
		"userType":        "business",
		"firstName":       "Alice",
		"lastName":        "Smith",
		"email":           "alice@example.com",
		"businessName":    "Acme Trading Company",
		"businessType":    "Individual",
		"address":         "221B Baker Street, Marylebone, London",
		"country":         "UK",
		"userName":        "alice",
		"password":        "Passw0rd",
		"confirmPassword": "Passw0rd",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("valid submission", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/registration", validRegistrationBody(), nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp registrationResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, SeverityInfo, resp.Notice.Severity)
	})

	t.Run("field errors", func(t *testing.T) {
		body := validRegistrationBody()
		body["userName"] = "mallory"
		body["password"] = "short1"
		body["confirmPassword"] = "short1"

		rec := doJSON(t, router, http.MethodPost, "/api/v1/registration", body, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ValidationErrorStruct
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ValidationErrorCode, resp.ErrorCode)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "password", resp.Errors[0].FieldKey)
	})
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("pending user rejected with generic notice", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/registration", validRegistrationBody(), nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		login := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"userName": "alice", "password": "Passw0rd"}, nil)
		assert.Equal(t, http.StatusUnauthorized, login.Code)
		assert.Contains(t, login.Body.String(), InvalidCredentialsMessage)
	})

	t.Run("admin login routes to admin review", func(t *testing.T) {
		login := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"userName": "admin", "password": "RootPass1"}, nil)
		require.Equal(t, http.StatusOK, login.Code)

		var resp loginResponse
		require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))
		assert.Equal(t, "AdminReview", string(resp.Route))
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		login := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"userName": "alice"}, nil)
		assert.Equal(t, http.StatusBadRequest, login.Code)
	})
}

func TestAdminEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/registration", validRegistrationBody(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	login := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"userName": "admin", "password": "RootPass1"}, nil)
	require.Equal(t, http.StatusOK, login.Code)

	var adminSession loginResponse
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &adminSession))
	adminHeaders := map[string]string{"Authorization": "Bearer " + adminSession.AccessToken}

	t.Run("listing requires a token", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodGet, "/api/v1/admin/records", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("listing excludes the admin record", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodGet, "/api/v1/admin/records", nil, adminHeaders)
		require.Equal(t, http.StatusOK, resp.Code)

		var view []service.ReviewItem
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &view))
		require.Len(t, view, 1)
		assert.Equal(t, "alice", view[0].Record.UserName)
	})

	t.Run("toggle then login succeeds", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodPost, "/api/v1/admin/records/0/approval", nil, adminHeaders)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Approved")

		userLogin := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"userName": "alice", "password": "Passw0rd"}, nil)
		require.Equal(t, http.StatusOK, userLogin.Code)

		var session loginResponse
		require.NoError(t, json.Unmarshal(userLogin.Body.Bytes(), &session))
		assert.Equal(t, "Dashboard", string(session.Route))
	})

	t.Run("toggle out of range", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodPost, "/api/v1/admin/records/42/approval", nil, adminHeaders)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
