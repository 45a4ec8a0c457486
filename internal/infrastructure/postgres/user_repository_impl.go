package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vedijajagtap/todolist-api/internal/domain/entity"
	"github.com/vedijajagtap/todolist-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`, u.Name)

	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

// Find lists users in insertion order. A non-empty name narrows the list
// to case-insensitive substring matches; ILIKE with both wildcards keeps
// the match unanchored.
func (r *UserRepository) Find(ctx context.Context, name string) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM users
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
		ORDER BY created_at
	`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, updated_at = $2
		WHERE id = $3
	`, u.Name, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the user in a single conditional statement so the
// dependent-task check cannot go stale before the row disappears. When
// no row was deleted, a follow-up existence probe distinguishes a
// blocked delete from a missing user.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM users
		WHERE id = $1
		  AND NOT EXISTS (SELECT 1 FROM tasks WHERE tasks.user_id = users.id)
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)
	`, id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return repository.ErrHasTasks
	}
	return repository.ErrNotFound
}

var _ repository.UserRepository = (*UserRepository)(nil)
