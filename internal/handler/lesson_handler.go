package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khaCey/Teachers-Calendar/internal/dto"
	"github.com/khaCey/Teachers-Calendar/internal/service"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
	"github.com/khaCey/Teachers-Calendar/pkg/response"
)

// LessonHandler exposes the cached lesson endpoints driving the dashboard.
type LessonHandler struct {
	lessons *service.LessonService
}

// NewLessonHandler constructs LessonHandler.
func NewLessonHandler(lessons *service.LessonService) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

// List godoc
// @Summary List the day's cached lessons
// @Tags Lessons
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /lessons [get]
func (h *LessonHandler) List(c *gin.Context) {
	lessons, err := h.lessons.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lessons, map[string]interface{}{"count": len(lessons)})
}

// Statuses godoc
// @Summary List the operator flags of the cached lessons
// @Tags Lessons
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /lessons/statuses [get]
func (h *LessonHandler) Statuses(c *gin.Context) {
	statuses, err := h.lessons.Statuses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, statuses)
}

// SetStatus godoc
// @Summary Flip one operator flag on a cached lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Param eventId path string true "Calendar event ID"
// @Param payload body dto.StatusUpdateRequest true "Flag update"
// @Success 204
// @Router /lessons/{eventId}/status [patch]
func (h *LessonHandler) SetStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid status payload"))
		return
	}

	if err := h.lessons.SetStatus(c.Request.Context(), c.Param("eventId"), req.Field, req.Value); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export the day's cached lessons
// @Tags Lessons
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /lessons/export [get]
func (h *LessonHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	payload, contentType, err := h.lessons.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("lessons-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
