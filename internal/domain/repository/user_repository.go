package repository

import (
	"context"

	"github.com/vedijajagtap/todolist-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// Find returns users whose name contains the given text as a
	// case-insensitive substring, in store-default order. An empty name
	// matches all users.
	Find(ctx context.Context, name string) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	// Delete removes the user only if no task references it. The delete
	// and the reference check execute as one statement so a concurrent
	// task insert cannot slip between them.
	Delete(ctx context.Context, id string) error
}
