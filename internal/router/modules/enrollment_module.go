package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abovebytes/coursehub/internal/container"
	handlers "github.com/abovebytes/coursehub/internal/interface/http"
	"github.com/abovebytes/coursehub/internal/interface/middleware"
)

// EnrollmentModule wires the relationship queries and enrollment creation.
type EnrollmentModule struct {
	Handler *handlers.EnrollmentHandler
}

func NewEnrollmentModule(h *handlers.EnrollmentHandler) *EnrollmentModule {
	return &EnrollmentModule{Handler: h}
}

func (m *EnrollmentModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	enrollments := rg.Group("/enrollments")
	{
		enrollments.GET("", readLimiter, m.Handler.List)
		enrollments.GET("/by-student/:email", readLimiter, m.Handler.ByStudent)
		enrollments.GET("/by-teacher/:email", readLimiter, m.Handler.ByTeacher)
		enrollments.GET("/by-course/:title", readLimiter, m.Handler.ByCourse)

		enrollments.POST("", writeLimiter, m.Handler.Enroll)
	}
}
