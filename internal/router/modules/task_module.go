package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vedijajagtap/todolist-api/internal/container"
	handlers "github.com/vedijajagtap/todolist-api/internal/interface/http"
	"github.com/vedijajagtap/todolist-api/internal/interface/middleware"
)

// TaskModule wires the task JSON endpoints:
// GET/POST /api/tasks, GET/PUT/DELETE /api/tasks/:id

type TaskModule struct {
	Handler *handlers.TaskHandler
}

func NewTaskModule(h *handlers.TaskHandler) *TaskModule {
	return &TaskModule{Handler: h}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	tasks := rg.Group("/tasks", rl)
	{
		tasks.GET("", m.Handler.List)
		tasks.POST("", m.Handler.Create)
		tasks.GET("/:id", m.Handler.Get)
		tasks.PUT("/:id", m.Handler.Update)
		tasks.DELETE("/:id", m.Handler.Delete)
	}
}
