package entity

import "time"

const (
	EventUserCreated = "user.created"
	EventUserDeleted = "user.deleted"
)

// UserEvent is published after a user is created or deleted.
type UserEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
