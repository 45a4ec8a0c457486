package router

import (
	"github.com/vedijajagtap/todolist-api/internal/application"
	"github.com/vedijajagtap/todolist-api/internal/container"
	pginfra "github.com/vedijajagtap/todolist-api/internal/infrastructure/postgres"
	handlers "github.com/vedijajagtap/todolist-api/internal/interface/http"
	"github.com/vedijajagtap/todolist-api/internal/interface/web"
	"github.com/vedijajagtap/todolist-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	taskRepo := pginfra.NewTaskRepository(container.GetPGPool())

	userSvc := application.NewUserService(userRepo, taskRepo, logger)
	taskSvc := application.NewTaskService(taskRepo, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger)))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}

	r.AddRoot(modules.NewWebModule(
		web.NewUserPages(userSvc, logger),
		web.NewTaskPages(taskSvc, userSvc, logger),
	))
}
