package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/regportal/backend/pkg/auth"
	"github.com/regportal/backend/pkg/logger"
)

const (
	authorizationHeader = "Authorization"
	recordCtx           = "recordId"
)

func (h *Handler) adminIdentityMiddleware(c *gin.Context) {
	claims, err := h.parseAuthHeader(c)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			logger.Error("parse auth header failed", zap.Error(err))
		}
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if claims.Role != auth.RoleAdmin {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	c.Set(recordCtx, claims.RecordID)
}

func (h *Handler) parseAuthHeader(c *gin.Context) (*auth.Claims, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return nil, errors.New("empty auth header")
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return nil, errors.New("invalid auth header")
	}

	if headerParts[1] == "" {
		return nil, errors.New("token is empty")
	}

	return h.tokenManager.Parse(headerParts[1])
}
