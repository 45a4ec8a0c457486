package modules

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vedijajagtap/todolist-api/internal/container"
	"github.com/vedijajagtap/todolist-api/internal/interface/middleware"
	"github.com/vedijajagtap/todolist-api/internal/interface/web"
)

// WebModule wires the server-rendered pages at the site root. Form
// updates and deletes arrive as POSTs rewritten by the method-override
// handler before routing.
type WebModule struct {
	Users *web.UserPages
	Tasks *web.TaskPages
}

func NewWebModule(users *web.UserPages, tasks *web.TaskPages) *WebModule {
	return &WebModule{Users: users, Tasks: tasks}
}

func (m *WebModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	pages := rg.Group("", rl)

	pages.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", gin.H{})
	})

	users := pages.Group("/users")
	{
		users.GET("", m.Users.Index)
		users.GET("/new", m.Users.New)
		users.POST("", m.Users.Create)
		users.GET("/:id", m.Users.Show)
		users.GET("/:id/edit", m.Users.Edit)
		users.PATCH("/:id", m.Users.Update)
		users.DELETE("/:id", m.Users.Delete)
	}

	tasks := pages.Group("/tasks")
	{
		tasks.GET("", m.Tasks.Index)
		tasks.GET("/new", m.Tasks.New)
		tasks.POST("", m.Tasks.Create)
		tasks.GET("/:id", m.Tasks.Show)
		tasks.GET("/:id/edit", m.Tasks.Edit)
		tasks.PUT("/:id", m.Tasks.Update)
		tasks.DELETE("/:id", m.Tasks.Delete)
	}
}
