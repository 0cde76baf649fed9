package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaCey/Teachers-Calendar/internal/service"
	"github.com/khaCey/Teachers-Calendar/pkg/response"
)

// StudentHandler exposes roster lookup endpoints.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// Links godoc
// @Summary Get a student's document links
// @Tags Students
// @Produce json
// @Param name path string true "Student name"
// @Success 200 {object} response.Envelope
// @Router /students/{name}/links [get]
func (h *StudentHandler) Links(c *gin.Context) {
	links, err := h.students.Links(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, links)
}

// FoldersAndTeachers godoc
// @Summary List lesson folders and active teachers
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /folders [get]
func (h *StudentHandler) FoldersAndTeachers(c *gin.Context) {
	data, err := h.students.FoldersAndTeachers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data)
}

// NamesByFolder godoc
// @Summary List the student names attached to a lesson folder
// @Tags Students
// @Produce json
// @Param folderKey path string true "Lesson folder key"
// @Success 200 {object} response.Envelope
// @Router /folders/{folderKey}/students [get]
func (h *StudentHandler) NamesByFolder(c *gin.Context) {
	names, err := h.students.NamesByFolder(c.Request.Context(), c.Param("folderKey"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, names)
}
