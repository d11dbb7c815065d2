package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/regportal/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const RoleAdmin = "admin"

var ErrAccessTokenExpired = errors.New("token has invalid claims: token is expired")

// TokenManager provides logic for access token generation and parsing.
type TokenManager interface {
	NewJWT(recordID uuid.UUID, role string) (string, time.Duration, error)
	Parse(accessToken string) (*Claims, error)
}

// Claims is the parsed token payload: record identity plus its role.
type Claims struct {
	RecordID uuid.UUID
	Role     string
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	signingKey     string
	accessTokenTTL time.Duration
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.AccessTokenTTL == 0 {
		return nil, errors.New("empty access token ttl")
	}

	return &Manager{
		signingKey:     cfg.SigningKey,
		accessTokenTTL: cfg.AccessTokenTTL,
	}, nil
}

func (m *Manager) NewJWT(recordID uuid.UUID, role string) (string, time.Duration, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessTokenTTL)),
			Subject:   recordID.String(),
		},
	})

	accessToken, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", 0, errors.New("sign jwt failed")
	}

	return accessToken, m.accessTokenTTL, nil
}

func (m *Manager) Parse(accessToken string) (*Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	})
	if err != nil {
		return nil, err
	}

	recordID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("subject uuid parse: %w", err)
	}

	return &Claims{RecordID: recordID, Role: claims.Role}, nil
}
