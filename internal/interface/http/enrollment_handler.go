package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abovebytes/coursehub/internal/application"
	"github.com/abovebytes/coursehub/pkg/response"
	"github.com/abovebytes/coursehub/pkg/validation"
)

type EnrollmentHandler struct {
	Svc    *application.EnrollmentService
	Logger *logrus.Logger
}

func NewEnrollmentHandler(svc *application.EnrollmentService, logger *logrus.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{Svc: svc, Logger: logger}
}

type enrollRequest struct {
	StudentEmail string `json:"student_email" binding:"required,email"`
	TeacherEmail string `json:"teacher_email" binding:"required,email"`
	CourseTitle  string `json:"course_title" binding:"required"`
}

func (h *EnrollmentHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list enrollments", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "enrollments", map[string]any{"count": len(list)})
}

// The by-* lookups return an empty set when the referenced user or
// course does not exist; callers cannot distinguish "no data" from
// "unknown reference" here.
func (h *EnrollmentHandler) ByStudent(c *gin.Context) {
	list, err := h.Svc.ByStudent(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to query enrollments", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "enrollments by student", map[string]any{"count": len(list)})
}

func (h *EnrollmentHandler) ByTeacher(c *gin.Context) {
	list, err := h.Svc.ByTeacher(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to query enrollments", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "enrollments by teacher", map[string]any{"count": len(list)})
}

func (h *EnrollmentHandler) ByCourse(c *gin.Context) {
	list, err := h.Svc.ByCourse(c.Request.Context(), c.Param("title"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to query enrollments", nil)
		return
	}
	response.Success(c, http.StatusOK, list, "enrollments by course", map[string]any{"count": len(list)})
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Enroll(c.Request.Context(), req.StudentEmail, req.TeacherEmail, req.CourseTitle)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) || errors.Is(err, application.ErrCourseNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to create enrollment", nil)
		return
	}
	response.Success(c, http.StatusCreated, e, "enrollment created", nil)
}
