package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaCey/Teachers-Calendar/internal/dto"
	"github.com/khaCey/Teachers-Calendar/internal/service"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
	"github.com/khaCey/Teachers-Calendar/pkg/response"
)

// SyncHandler exposes the lesson cache sync endpoint.
type SyncHandler struct {
	sync *service.SyncService
}

// NewSyncHandler constructs SyncHandler.
func NewSyncHandler(sync *service.SyncService) *SyncHandler {
	return &SyncHandler{sync: sync}
}

// Run godoc
// @Summary Rebuild the day's lesson cache from the calendar
// @Tags Sync
// @Accept json
// @Produce json
// @Param date query string false "Sync date (dd/MM/yyyy or yyyy-MM-dd)"
// @Param payload body dto.SyncRequest false "Optional sync date (dd/MM/yyyy or yyyy-MM-dd)"
// @Success 200 {object} response.Envelope
// @Router /sync [post]
func (h *SyncHandler) Run(c *gin.Context) {
	var req dto.SyncRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid sync payload"))
			return
		}
	}
	if req.Date == "" {
		req.Date = c.Query("date")
	}

	lessons, err := h.sync.Run(c.Request.Context(), req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lessons, map[string]interface{}{"count": len(lessons)})
}
