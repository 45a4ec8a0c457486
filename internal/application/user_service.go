package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vedijajagtap/todolist-api/internal/domain/entity"
	repo "github.com/vedijajagtap/todolist-api/internal/domain/repository"
)

// recentTaskLimit caps the owned-task summary returned by UserService.Get.
const recentTaskLimit = 4

type UserService struct {
	Users  repo.UserRepository
	Tasks  repo.TaskRepository
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, tasks repo.TaskRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Tasks: tasks, Logger: logger}
}

type CreateUserInput struct {
	Name string
}

type UpdateUserInput struct {
	Name string
}

// List returns users matching the optional case-insensitive name
// substring, in store order. A store failure is reported as such, never
// as an empty result.
func (s *UserService) List(ctx context.Context, name string) ([]*entity.User, error) {
	users, err := s.Users.Find(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, storeErr("list users", err)
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	u := &entity.User{Name: name}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, storeErr("create user", err)
	}
	return u, nil
}

// Get returns the user plus up to recentTaskLimit of its tasks for the
// detail view summary.
func (s *UserService) Get(ctx context.Context, id string) (*entity.User, []*entity.Task, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, storeErr("get user", err)
	}
	tasks, err := s.Tasks.FindByUser(ctx, u.ID, recentTaskLimit)
	if err != nil {
		return nil, nil, storeErr("list user tasks", err)
	}
	return u, tasks, nil
}

// Update overwrites the user's mutable fields wholesale.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get user", err)
	}
	u.Name = name
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("update user", err)
	}
	return u, nil
}

// CanDelete reports whether the user is deletable and how many tasks
// block it. A failing count blocks deletion rather than allowing it.
func (s *UserService) CanDelete(ctx context.Context, id string) (bool, int64, error) {
	n, err := s.Tasks.CountByUser(ctx, id)
	if err != nil {
		return false, 0, storeErr("count user tasks", err)
	}
	return n == 0, n, nil
}

// Delete removes the user unless tasks still reference it. The check and
// the delete run as one conditional statement in the store, so the guard
// cannot go stale between observation and removal.
func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.Users.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrHasTasks):
		return ErrUserHasTasks
	case errors.Is(err, repo.ErrNotFound):
		return ErrNotFound
	default:
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", id).Error("user delete failed")
		}
		return storeErr("delete user", err)
	}
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
