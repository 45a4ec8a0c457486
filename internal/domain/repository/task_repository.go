package repository

import (
	"context"
	"time"

	"github.com/vedijajagtap/todolist-api/internal/domain/entity"
)

// TaskFilter describes the optional criteria for task listing. Zero
// values impose no constraint; set criteria combine with AND.
type TaskFilter struct {
	// TaskName matches as a case-insensitive, unanchored substring.
	TaskName string
	// ScheduledBefore keeps tasks with scheduled_date <= the given time.
	ScheduledBefore *time.Time
}

// TaskRepository defines the interface for task-related store operations.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	// GetByID resolves the owning user via a left join; Owner stays nil
	// when the reference dangles.
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Find(ctx context.Context, f TaskFilter) ([]*entity.Task, error)
	// FindByUser returns up to limit tasks owned by userID in
	// store-default order.
	FindByUser(ctx context.Context, userID string, limit int) ([]*entity.Task, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id string) error
}
