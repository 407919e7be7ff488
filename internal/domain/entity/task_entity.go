package entity

import "time"

const (
	TaskStatusTodo = 0
	TaskStatusDone = 1
)

// Task belongs to exactly one user and is removed together with it.
type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      int       `json:"status"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
