package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regportal/backend/internal/config"
)

func TestManagerRoundTrip(t *testing.T) {
	manager, err := NewManager(config.JWTConfig{AccessTokenTTL: time.Minute, SigningKey: "secret"})
	require.NoError(t, err)

	recordID := uuid.New()
	token, ttl, err := manager.NewJWT(recordID, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, recordID, claims.RecordID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestManagerRejectsBadConfig(t *testing.T) {
	_, err := NewManager(config.JWTConfig{AccessTokenTTL: time.Minute})
	assert.Error(t, err)

	_, err = NewManager(config.JWTConfig{SigningKey: "secret"})
	assert.Error(t, err)
}

func TestManagerRejectsForeignToken(t *testing.T) {
	manager, err := NewManager(config.JWTConfig{AccessTokenTTL: time.Minute, SigningKey: "secret"})
	require.NoError(t, err)

	other, err := NewManager(config.JWTConfig{AccessTokenTTL: time.Minute, SigningKey: "different"})
	require.NoError(t, err)

	token, _, err := other.NewJWT(uuid.New(), RoleAdmin)
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.Error(t, err)
}
