package application

import (
	"context"
	"io"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
)

// PasswordHasher is satisfied by helpers.PasswordHasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// UserIndex is a full-text side index of user projections.
type UserIndex interface {
	Index(ctx context.Context, v entity.UserView) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, q string, size int) ([]entity.UserView, error)
}

// AvatarStore uploads an avatar and returns its public URL.
type AvatarStore interface {
	Upload(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error)
}

// EventPublisher is satisfied by helpers.RabbitPublisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, msgType string, body any) error
}
