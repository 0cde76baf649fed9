package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khaCey/Teachers-Calendar/internal/dto"
	"github.com/khaCey/Teachers-Calendar/internal/service"
	appErrors "github.com/khaCey/Teachers-Calendar/pkg/errors"
	"github.com/khaCey/Teachers-Calendar/pkg/response"
)

// DocumentHandler exposes PDF generation endpoints.
type DocumentHandler struct {
	documents *service.DocumentService
}

// NewDocumentHandler constructs DocumentHandler.
func NewDocumentHandler(documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// LessonNote godoc
// @Summary Render and store a lesson-note PDF
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body dto.LessonNoteRequest true "Lesson note payload"
// @Success 201 {object} response.Envelope
// @Router /documents/lesson-note [post]
func (h *DocumentHandler) LessonNote(c *gin.Context) {
	var req dto.LessonNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson note payload"))
		return
	}

	result, err := h.documents.GenerateLessonNote(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Evaluation godoc
// @Summary Render and store an evaluation PDF
// @Tags Documents
// @Accept json
// @Produce json
// @Param payload body dto.EvaluationPDFRequest true "Evaluation payload"
// @Success 201 {object} response.Envelope
// @Router /documents/evaluation [post]
func (h *DocumentHandler) Evaluation(c *gin.Context) {
	var req dto.EvaluationPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid evaluation payload"))
		return
	}

	result, err := h.documents.GenerateEvaluation(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Download godoc
// @Summary Download a stored document
// @Tags Documents
// @Produce octet-stream
// @Param path path string true "Document path"
// @Success 200 {file} binary
// @Router /documents/files/{path} [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	relPath := strings.TrimPrefix(c.Param("path"), "/")
	file, err := h.documents.Open(c.Request.Context(), relPath)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck

	c.Header("Content-Disposition", "attachment; filename=\""+filepath.Base(relPath)+"\"")
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, file)
}

// Delete godoc
// @Summary Delete a stored document
// @Tags Documents
// @Param path path string true "Document path"
// @Success 204
// @Router /documents/files/{path} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	relPath := strings.TrimPrefix(c.Param("path"), "/")
	if err := h.documents.Delete(c.Request.Context(), relPath); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
