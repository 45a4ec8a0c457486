package application

import (
	"context"
	"errors"

	"github.com/vedijajagtap/todolist-api/internal/domain/entity"
	"github.com/vedijajagtap/todolist-api/internal/domain/repository"
	"github.com/vedijajagtap/todolist-api/internal/infrastructure/memory"
)

func newTestServices() (*UserService, *TaskService) {
	tasks := memory.NewTaskRepository()
	users := memory.NewUserRepository(tasks)
	tasks.Users = users
	return NewUserService(users, tasks, nil), NewTaskService(tasks, nil)
}

var errConnRefused = errors.New("connection refused")

// failingTaskRepo simulates an unreachable task store. Unset methods
// panic, which is fine: tests only exercise the overridden paths.
type failingTaskRepo struct {
	repository.TaskRepository
}

func (failingTaskRepo) CountByUser(context.Context, string) (int64, error) {
	return 0, errConnRefused
}

func (failingTaskRepo) Find(context.Context, repository.TaskFilter) ([]*entity.Task, error) {
	return nil, errConnRefused
}

type failingUserRepo struct {
	repository.UserRepository
}

func (failingUserRepo) Find(context.Context, string) ([]*entity.User, error) {
	return nil, errConnRefused
}

func (failingUserRepo) Delete(context.Context, string) error {
	return errConnRefused
}
