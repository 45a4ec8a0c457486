package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vedijajagtap/todolist-api/internal/domain/entity"
	"github.com/vedijajagtap/todolist-api/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (task_name, description, scheduled_date, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, t.TaskName, t.Description, t.ScheduledDate, t.UserID)

	return row.Scan(&t.ID, &t.CreatedAt)
}

// GetByID resolves the owner through a left join: a task whose user was
// deleted out of band still reads back, with a nil Owner.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t := &entity.Task{}
	var ownerID, ownerName *string

	row := r.pool.QueryRow(ctx, `
		SELECT t.id, t.task_name, t.description, t.scheduled_date, t.created_at, t.user_id,
		       u.id, u.name
		FROM tasks t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE t.id = $1
	`, id)

	if err := row.Scan(&t.ID, &t.TaskName, &t.Description, &t.ScheduledDate,
		&t.CreatedAt, &t.UserID, &ownerID, &ownerName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if ownerID != nil {
		t.Owner = &entity.User{ID: *ownerID, Name: *ownerName}
	}
	return t, nil
}

func (r *TaskRepository) Find(ctx context.Context, f repository.TaskFilter) ([]*entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, task_name, description, scheduled_date, created_at, user_id
		FROM tasks
		WHERE ($1 = '' OR task_name ILIKE '%' || $1 || '%')
		  AND ($2::timestamptz IS NULL OR scheduled_date <= $2)
		ORDER BY created_at
	`, f.TaskName, f.ScheduledBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *TaskRepository) FindByUser(ctx context.Context, userID string, limit int) ([]*entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, task_name, description, scheduled_date, created_at, user_id
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *TaskRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM tasks WHERE user_id = $1
	`, userID).Scan(&n)
	return n, err
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET task_name = $1, description = $2, scheduled_date = $3, user_id = $4
		WHERE id = $5
	`, t.TaskName, t.Description, t.ScheduledDate, t.UserID, t.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM tasks WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanTasks(rows pgx.Rows) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t := &entity.Task{}
		if err := rows.Scan(&t.ID, &t.TaskName, &t.Description, &t.ScheduledDate,
			&t.CreatedAt, &t.UserID); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
