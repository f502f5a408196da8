package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abovebytes/coursehub/internal/application"
	"github.com/abovebytes/coursehub/pkg/response"
)

// respondCourseError maps course service failures onto HTTP statuses.
// Duplicate errors keep their full message so callers see which record
// already holds the conflicting key.
func respondCourseError(c *gin.Context, err error) {
	var dup *application.DuplicateCourseError
	switch {
	case errors.As(err, &dup):
		response.Error[any](c, http.StatusConflict, dup.Error(), nil)
	case errors.Is(err, application.ErrCourseNotFound):
		response.Error[any](c, http.StatusNotFound, "course not found", nil)
	case errors.Is(err, application.ErrTitleRequired),
		errors.Is(err, application.ErrInvalidProvider),
		errors.Is(err, application.ErrInvalidLevel):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

func respondUserError(c *gin.Context, err error) {
	var dup *application.DuplicateUserError
	switch {
	case errors.As(err, &dup):
		response.Error[any](c, http.StatusConflict, dup.Error(), nil)
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrFullNameRequired),
		errors.Is(err, application.ErrEmailRequired),
		errors.Is(err, application.ErrInvalidRole):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
