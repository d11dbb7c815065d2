package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/regportal/backend/internal/config"
	"github.com/regportal/backend/internal/service"
	"github.com/regportal/backend/pkg/auth"
)

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initAuthRoutes(v1)
	h.initRegistrationRoutes(v1)
	h.initAdminRoutes(v1)
}
