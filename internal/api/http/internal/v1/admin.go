package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/regportal/backend/internal/domain"
	"github.com/regportal/backend/internal/service"
	"github.com/regportal/backend/pkg/logger"
)

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.adminIdentityMiddleware)
	admin.GET("/records", h.listRecords)
	admin.POST("/records/:index/approval", h.toggleApproval)
}

func (h *Handler) listRecords(c *gin.Context) {
	view, err := h.services.Admin.ListPending(c.Request.Context())
	if err != nil {
		logger.Error("list records failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	c.JSON(http.StatusOK, view)
}

type toggleApprovalResponse struct {
	Record domain.UserRecord `json:"record"`
	Notice Notice            `json:"notice"`
}

func (h *Handler) toggleApproval(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, RecordNotFoundCode)
		return
	}

	rec, err := h.services.Admin.ToggleApproval(c.Request.Context(), index)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			errorResponse(c, http.StatusNotFound, RecordNotFoundCode)
			return
		}
		logger.Error("toggle approval failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	c.JSON(http.StatusOK, toggleApprovalResponse{
		Record: *rec,
		Notice: Notice{Severity: SeverityInfo, Message: "Approval status is now " + string(rec.IsApproved)},
	})
}
