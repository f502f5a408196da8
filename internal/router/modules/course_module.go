package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abovebytes/coursehub/internal/container"
	handlers "github.com/abovebytes/coursehub/internal/interface/http"
	"github.com/abovebytes/coursehub/internal/interface/middleware"
)

// CourseModule wires the catalog actions.
// Reads: GET /api/courses, /count, /by-id/:id, /by-title/:title,
// /search-description, /search, /health
// Writes: POST /api/courses, DELETE /api/courses/by-title/:title,
// PATCH /api/courses/url, PATCH /api/courses/title
type CourseModule struct {
	Handler *handlers.CourseHandler
}

func NewCourseModule(h *handlers.CourseHandler) *CourseModule {
	return &CourseModule{Handler: h}
}

func (m *CourseModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	courses := rg.Group("/courses")
	{
		courses.GET("", readLimiter, m.Handler.List)
		courses.GET("/count", readLimiter, m.Handler.Count)
		courses.GET("/by-id/:id", readLimiter, m.Handler.GetByID)
		courses.GET("/by-title/:title", readLimiter, m.Handler.GetByTitle)
		courses.GET("/search-description", readLimiter, m.Handler.SearchByDescription)
		courses.GET("/search", readLimiter, m.Handler.Search)
		courses.GET("/health", readLimiter, m.Handler.Health)

		courses.POST("", writeLimiter, m.Handler.Add)
		courses.DELETE("/by-title/:title", writeLimiter, m.Handler.DeleteByTitle)
		courses.PATCH("/url", writeLimiter, m.Handler.UpdateURL)
		courses.PATCH("/title", writeLimiter, m.Handler.UpdateTitle)
	}
}
