package repository

import (
	"context"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
)

// TaskRepository stores tasks. Every method is scoped to the owning user;
// a task owned by someone else is reported as not found.
type TaskRepository interface {
	GetTasksByPage(ctx context.Context, userID string, page, perPage int, name string, status *int) ([]entity.Task, int, error)
	GetAll(ctx context.Context, userID string) ([]entity.Task, error)
	Search(ctx context.Context, userID, query string, status *int) ([]entity.Task, error)
	GetByID(ctx context.Context, userID, id string) (*entity.Task, error)
	Create(ctx context.Context, t *entity.Task) error
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, userID, id string) error
}
