package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abovebytes/coursehub/internal/container"
	handlers "github.com/abovebytes/coursehub/internal/interface/http"
	"github.com/abovebytes/coursehub/internal/interface/middleware"
)

// UserModule wires the account actions.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil)
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	users := rg.Group("/users")
	{
		users.GET("", readLimiter, m.Handler.List)
		users.GET("/count-active", readLimiter, m.Handler.CountActive)
		users.GET("/by-id/:id", readLimiter, m.Handler.GetByID)
		users.GET("/by-email/:email", readLimiter, m.Handler.GetByEmail)

		users.POST("", writeLimiter, m.Handler.Create)
		users.POST("/deactivate", writeLimiter, m.Handler.Deactivate)
	}
}
