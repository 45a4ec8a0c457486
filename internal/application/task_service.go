package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vedijajagtap/todolist-api/internal/domain/entity"
	repo "github.com/vedijajagtap/todolist-api/internal/domain/repository"
)

type TaskService struct {
	Tasks  repo.TaskRepository
	Logger *logrus.Logger
	// now is swappable for tests.
	now func() time.Time
}

func NewTaskService(tasks repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Logger: logger, now: time.Now}
}

type CreateTaskInput struct {
	TaskName    string
	Description string
	// ScheduledDate defaults to the creation time when nil.
	ScheduledDate *time.Time
	UserID        string
}

type UpdateTaskInput struct {
	TaskName      string
	Description   string
	ScheduledDate time.Time
	UserID        string
}

// List returns tasks matching the filter in store order, fully
// materialized. No criterion means all tasks.
func (s *TaskService) List(ctx context.Context, f repo.TaskFilter) ([]*entity.Task, error) {
	f.TaskName = strings.TrimSpace(f.TaskName)
	tasks, err := s.Tasks.Find(ctx, f)
	if err != nil {
		return nil, storeErr("list tasks", err)
	}
	return tasks, nil
}

// Create persists a new task. The referenced user is deliberately not
// checked for existence; a dangling reference resolves to a nil owner on
// read instead of failing the write.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*entity.Task, error) {
	name := strings.TrimSpace(in.TaskName)
	if name == "" {
		return nil, fmt.Errorf("%w: taskName is required", ErrValidation)
	}
	if strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("%w: user is required", ErrValidation)
	}
	scheduled := s.now()
	if in.ScheduledDate != nil && !in.ScheduledDate.IsZero() {
		scheduled = *in.ScheduledDate
	}
	t := &entity.Task{
		TaskName:      name,
		Description:   in.Description,
		ScheduledDate: scheduled,
		UserID:        in.UserID,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		return nil, storeErr("create task", err)
	}
	return t, nil
}

// Get returns the task with its owner resolved where possible.
func (s *TaskService) Get(ctx context.Context, id string) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get task", err)
	}
	return t, nil
}

// Update overwrites every caller-mutable field with the supplied values;
// an empty description clears the stored one. CreatedAt is never
// rewritten.
func (s *TaskService) Update(ctx context.Context, id string, in UpdateTaskInput) (*entity.Task, error) {
	name := strings.TrimSpace(in.TaskName)
	if name == "" {
		return nil, fmt.Errorf("%w: taskName is required", ErrValidation)
	}
	if strings.TrimSpace(in.UserID) == "" {
		return nil, fmt.Errorf("%w: user is required", ErrValidation)
	}
	if in.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("%w: scheduledDate is required", ErrValidation)
	}
	t, err := s.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("get task", err)
	}
	t.TaskName = name
	t.Description = in.Description
	t.ScheduledDate = in.ScheduledDate
	t.UserID = in.UserID
	t.Owner = nil
	if err := s.Tasks.Update(ctx, t); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr("update task", err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	err := s.Tasks.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return ErrNotFound
	default:
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("task_id", id).Error("task delete failed")
		}
		return storeErr("delete task", err)
	}
}
