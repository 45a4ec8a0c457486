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

// UserRepository is an in-memory store keeping insertion order. It
// mirrors the postgres implementation's semantics, including the
// conditional delete against the task store, so service and handler
// tests can run without a database.
type UserRepository struct {
	mu    sync.Mutex
	users []*entity.User
	// Tasks backs the dependent-task check on Delete.
	Tasks *TaskRepository
}

func NewUserRepository(tasks *TaskRepository) *UserRepository {
	return &UserRepository{Tasks: tasks}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = uuid.NewString()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Find(_ context.Context, name string) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(name)
	out := make([]*entity.User, 0)
	for _, u := range r.users {
		if needle == "" || strings.Contains(strings.ToLower(u.Name), needle) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.ID == u.ID {
			u.UpdatedAt = time.Now()
			existing.Name = u.Name
			existing.UpdatedAt = u.UpdatedAt
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			if r.Tasks != nil {
				n, err := r.Tasks.CountByUser(ctx, id)
				if err != nil {
					return err
				}
				if n > 0 {
					return repository.ErrHasTasks
				}
			}
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.UserRepository = (*UserRepository)(nil)
