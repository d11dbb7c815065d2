package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/regportal/backend/internal/domain"
	"github.com/regportal/backend/internal/service"
	"github.com/regportal/backend/pkg/logger"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	auth.POST("/login", h.login)
}

type loginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Route       domain.Route `json:"route"`
	AccessToken string       `json:"access_token"`
	Notice      Notice       `json:"notice"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	result, err := h.services.Auth.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Wrong user, wrong password and pending approval all land
			// here with the same notice.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"notice": Notice{Severity: SeverityError, Message: InvalidCredentialsMessage},
			})
			return
		}
		logger.Error("login failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Route:       result.Route,
		AccessToken: result.AccessToken,
		Notice:      Notice{Severity: SeverityInfo, Message: "Login successful"},
	})
}
