package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vedijajagtap/todolist-api/internal/container"
	handlers "github.com/vedijajagtap/todolist-api/internal/interface/http"
	"github.com/vedijajagtap/todolist-api/internal/interface/middleware"
)

// UserModule wires the user JSON endpoints:
// GET/POST /api/users, GET/PUT/DELETE /api/users/:id

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	users := rg.Group("/users", rl)
	{
		users.GET("", m.Handler.List)
		users.POST("", m.Handler.Create)
		users.GET("/:id", m.Handler.Get)
		users.PUT("/:id", m.Handler.Update)
		users.DELETE("/:id", m.Handler.Delete)
	}
}
