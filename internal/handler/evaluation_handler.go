package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaCey/Teachers-Calendar/internal/service"
	"github.com/khaCey/Teachers-Calendar/pkg/response"
)

// EvaluationHandler exposes student evaluation lookups.
type EvaluationHandler struct {
	evaluations *service.EvaluationService
}

// NewEvaluationHandler constructs EvaluationHandler.
func NewEvaluationHandler(evaluations *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluations: evaluations}
}

// ListByStudent godoc
// @Summary List a student's evaluation scores
// @Tags Evaluations
// @Produce json
// @Param name path string true "Student name"
// @Success 200 {object} response.Envelope
// @Router /students/{name}/evaluations [get]
func (h *EvaluationHandler) ListByStudent(c *gin.Context) {
	evaluations, err := h.evaluations.ListByStudent(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, evaluations)
}
