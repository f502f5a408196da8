package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abovebytes/coursehub/internal/application"
	"github.com/abovebytes/coursehub/internal/domain/entity"
	"github.com/abovebytes/coursehub/pkg/response"
	"github.com/abovebytes/coursehub/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,role"`
}

type deactivateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), req.FullName, req.Email, entity.Role(req.Role))
	if err != nil {
		respondUserError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, u, "user created", nil)
}

// Deactivate answers with a descriptive message either way; a missing
// user is not an error here.
func (h *UserHandler) Deactivate(c *gin.Context) {
	var req deactivateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	msg, err := h.Svc.Deactivate(c.Request.Context(), req.Email)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to deactivate user", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, msg, nil)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list users", nil)
		return
	}
	response.Success(c, http.StatusOK, users, "users", map[string]any{"count": len(users)})
}

func (h *UserHandler) CountActive(c *gin.Context) {
	n, err := h.Svc.CountActive(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to count users", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n}, "active user count", nil)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	u, err := h.Svc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	u, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}
