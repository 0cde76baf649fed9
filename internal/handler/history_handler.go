package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaCey/Teachers-Calendar/internal/dto"
	"github.com/khaCey/Teachers-Calendar/internal/service"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
	"github.com/khaCey/Teachers-Calendar/pkg/response"
)

// HistoryHandler exposes lesson history endpoints.
type HistoryHandler struct {
	history *service.HistoryService
}

// NewHistoryHandler constructs HistoryHandler.
func NewHistoryHandler(history *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// Record godoc
// @Summary Append a lesson history entry
// @Tags History
// @Accept json
// @Produce json
// @Param payload body dto.HistoryEntryRequest true "History entry"
// @Success 201 {object} response.Envelope
// @Router /history [post]
func (h *HistoryHandler) Record(c *gin.Context) {
	var req dto.HistoryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid history payload"))
		return
	}
	if req.Teacher == "" {
		if claims := claimsFromContext(c); claims != nil {
			req.Teacher = claims.Name
		}
	}

	entry, err := h.history.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// ListByFolder godoc
// @Summary List a lesson folder's history
// @Tags History
// @Produce json
// @Param folderKey path string true "Lesson folder key"
// @Success 200 {object} response.Envelope
// @Router /folders/{folderKey}/history [get]
func (h *HistoryHandler) ListByFolder(c *gin.Context) {
	entries, err := h.history.ListByFolder(c.Request.Context(), c.Param("folderKey"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}
