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

type CourseHandler struct {
	Svc    *application.CourseService
	Logger *logrus.Logger
}

func NewCourseHandler(svc *application.CourseService, logger *logrus.Logger) *CourseHandler {
	return &CourseHandler{Svc: svc, Logger: logger}
}

type addCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Provider    string `json:"provider" binding:"required,provider"`
	Level       string `json:"level" binding:"required,level"`
	Language    string `json:"language"`
}

type updateCourseURLRequest struct {
	Title  string `json:"title" binding:"required"`
	NewURL string `json:"new_url" binding:"required,url"`
}

type updateCourseTitleRequest struct {
	Title    string `json:"title" binding:"required"`
	NewTitle string `json:"new_title" binding:"required"`
}

func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list courses", nil)
		return
	}
	response.Success(c, http.StatusOK, courses, "courses", map[string]any{"count": len(courses)})
}

func (h *CourseHandler) Count(c *gin.Context) {
	n, err := h.Svc.Count(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to count courses", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n}, "course count", nil)
}

func (h *CourseHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid course id", nil)
		return
	}
	course, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCourseError(c, err)
		return
	}
	response.Success(c, http.StatusOK, course, "course", nil)
}

func (h *CourseHandler) GetByTitle(c *gin.Context) {
	course, err := h.Svc.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		respondCourseError(c, err)
		return
	}
	response.Success(c, http.StatusOK, course, "course", nil)
}

// SearchByDescription returns the first matching course only; that is
// the operation's contract, not a pagination shortcut.
func (h *CourseHandler) SearchByDescription(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		response.Error[any](c, http.StatusBadRequest, "text query parameter is required", nil)
		return
	}
	course, err := h.Svc.SearchByDescription(c.Request.Context(), text)
	if err != nil {
		respondCourseError(c, err)
		return
	}
	response.Success(c, http.StatusOK, course, "course", nil)
}

func (h *CourseHandler) Add(c *gin.Context) {
	var req addCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	course, err := h.Svc.Add(c.Request.Context(), application.AddCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Provider:    entity.Provider(req.Provider),
		Level:       entity.Level(req.Level),
		Language:    req.Language,
	})
	if err != nil {
		respondCourseError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, course, "course added", nil)
}

func (h *CourseHandler) DeleteByTitle(c *gin.Context) {
	msg, err := h.Svc.DeleteByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to delete courses", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, msg, nil)
}

func (h *CourseHandler) UpdateURL(c *gin.Context) {
	var req updateCourseURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	course, err := h.Svc.UpdateURL(c.Request.Context(), req.Title, req.NewURL)
	if err != nil {
		respondCourseError(c, err)
		return
	}
	if course == nil {
		response.Success[any](c, http.StatusOK, nil, "no course found with title '"+req.Title+"'", nil)
		return
	}
	response.Success(c, http.StatusOK, course, "course url updated", nil)
}

func (h *CourseHandler) UpdateTitle(c *gin.Context) {
	var req updateCourseTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	course, err := h.Svc.UpdateTitle(c.Request.Context(), req.Title, req.NewTitle)
	if err != nil {
		respondCourseError(c, err)
		return
	}
	if course == nil {
		response.Success[any](c, http.StatusOK, nil, "no course found with title '"+req.Title+"'", nil)
		return
	}
	response.Success(c, http.StatusOK, course, "course title updated", nil)
}

func (h *CourseHandler) Health(c *gin.Context) {
	msg, err := h.Svc.Health(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "course catalog unavailable", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, msg, nil)
}

// Search is the full-text search backed by Elasticsearch.
func (h *CourseHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q query parameter is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Warn("course search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
