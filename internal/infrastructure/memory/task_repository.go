package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vedijajagtap/todolist-api/internal/domain/entity"
	"github.com/vedijajagtap/todolist-api/internal/domain/repository"
)

// TaskRepository is the in-memory counterpart of the postgres task
// store: insertion order, unanchored case-insensitive name matching and
// an inclusive scheduled-date bound.
type TaskRepository struct {
	mu    sync.Mutex
	tasks []*entity.Task
	// Users resolves owners on GetByID; a nil or missing owner leaves
	// Task.Owner nil, like the postgres LEFT JOIN.
	Users *UserRepository
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

func (r *TaskRepository) Create(_ context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	cp := *t
	cp.Owner = nil
	r.tasks = append(r.tasks, &cp)
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	r.mu.Lock()
	var found *entity.Task
	for _, t := range r.tasks {
		if t.ID == id {
			cp := *t
			found = &cp
			break
		}
	}
	r.mu.Unlock()

	if found == nil {
		return nil, repository.ErrNotFound
	}
	if r.Users != nil {
		if owner, err := r.Users.GetByID(ctx, found.UserID); err == nil {
			found.Owner = owner
		}
	}
	return found, nil
}

func (r *TaskRepository) Find(_ context.Context, f repository.TaskFilter) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(f.TaskName)
	out := make([]*entity.Task, 0)
	for _, t := range r.tasks {
		if needle != "" && !strings.Contains(strings.ToLower(t.TaskName), needle) {
			continue
		}
		if f.ScheduledBefore != nil && t.ScheduledDate.After(*f.ScheduledBefore) {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *TaskRepository) FindByUser(_ context.Context, userID string, limit int) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Task, 0)
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		cp := *t
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *TaskRepository) CountByUser(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.tasks {
		if t.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *TaskRepository) Update(_ context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.tasks {
		if existing.ID == t.ID {
			existing.TaskName = t.TaskName
			existing.Description = t.Description
			existing.ScheduledDate = t.ScheduledDate
			existing.UserID = t.UserID
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *TaskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
