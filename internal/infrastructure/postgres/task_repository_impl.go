package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/apperror"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/repository"
)

const (
	taskNotFound = "task not found"
	taskColumns  = `id, name, description, status, user_id, created_at, updated_at`
)

type TaskRepository struct {
	db DB
}

func NewTaskRepository(db DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func scanTask(row pgx.Row) (entity.Task, error) {
	var t entity.Task
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Status, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *TaskRepository) queryTasks(ctx context.Context, sql string, args ...any) ([]entity.Task, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, taskNotFound)
	}
	defer rows.Close()

	out := make([]entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, mapError(err, taskNotFound)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, taskNotFound)
	}
	return out, nil
}

func taskFilter(userID, name string, status *int) *filter {
	f := &filter{}
	f.add("user_id = $%d", userID)
	if name != "" {
		f.add("name ILIKE '%%' || $%d || '%%'", likeEscape(name))
	}
	if status != nil {
		f.add("status = $%d", *status)
	}
	return f
}

func (r *TaskRepository) GetTasksByPage(ctx context.Context, userID string, page, perPage int, name string, status *int) ([]entity.Task, int, error) {
	f := taskFilter(userID, name, status)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`+f.where(), f.args...).Scan(&total); err != nil {
		return nil, 0, mapError(err, taskNotFound)
	}

	q := fmt.Sprintf(`SELECT %s FROM tasks%s ORDER BY created_at, id LIMIT $%d OFFSET $%d`,
		taskColumns, f.where(), f.next(), f.next()+1)
	args := append(f.args, perPage, entity.Offset(page, perPage))
	items, err := r.queryTasks(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *TaskRepository) GetAll(ctx context.Context, userID string) ([]entity.Task, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY created_at, id`, userID)
}

func (r *TaskRepository) Search(ctx context.Context, userID, query string, status *int) ([]entity.Task, error) {
	f := taskFilter(userID, query, status)
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks`+f.where()+` ORDER BY created_at, id`, f.args...)
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, id string) (*entity.Task, error) {
	t, err := scanTask(r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2`, id, userID))
	if err != nil {
		return nil, mapError(err, taskNotFound)
	}
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO tasks (name, description, status, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, t.Name, t.Description, t.Status, t.UserID)

	return mapError(row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt), taskNotFound)
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	row := r.db.QueryRow(ctx, `
		UPDATE tasks
		SET name = $1, description = $2, status = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5
		RETURNING updated_at
	`, t.Name, t.Description, t.Status, t.ID, t.UserID)

	return mapError(row.Scan(&t.UpdatedAt), taskNotFound)
}

func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapError(err, taskNotFound)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound(taskNotFound)
	}
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
