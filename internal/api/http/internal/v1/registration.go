package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/regportal/backend/internal/validation"
	"github.com/regportal/backend/pkg/logger"
)

func (h *Handler) initRegistrationRoutes(api *gin.RouterGroup) {
	api.POST("/registration", h.register)
}

type registrationResponse struct {
	ID     uuid.UUID `json:"id"`
	Notice Notice    `json:"notice"`
}

func (h *Handler) register(c *gin.Context) {
	var form validation.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	rec, fieldErrs, err := h.services.Registration.Register(c.Request.Context(), form)
	if err != nil {
		logger.Error("registration failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	if len(fieldErrs) > 0 {
		fieldErrorsResponse(c, fieldErrs)
		return
	}

	c.JSON(http.StatusCreated, registrationResponse{
		ID:     rec.ID,
		Notice: Notice{Severity: SeverityInfo, Message: "Registration submitted for approval"},
	})
}
