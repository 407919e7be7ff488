package repository

import (
	"context"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Lookups of a missing user return an apperror NotFound error.
type UserRepository interface {
	GetUsersByPage(ctx context.Context, page, perPage int, name, email string) ([]entity.UserView, int, error)
	GetAll(ctx context.Context) ([]entity.UserView, error)
	Search(ctx context.Context, name string) ([]entity.UserView, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
	DeleteUserTasks(ctx context.Context, userID string) error
	// CheckUserByEmail returns an apperror Conflict error when email is already registered.
	CheckUserByEmail(ctx context.Context, email string) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
