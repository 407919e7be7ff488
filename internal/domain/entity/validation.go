package entity

import (
	"strings"
	"unicode/utf8"

	emailaddress "github.com/mcnijman/go-emailaddress"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/apperror"
)

const (
	MaxUserNameLength = 100
	MaxTaskNameLength = 100

	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// ValidateUserName trims v and checks it is non-empty and not longer than MaxUserNameLength runes.
func ValidateUserName(v string) (string, error) {
	name := strings.TrimSpace(v)
	if name == "" {
		return "", apperror.InvalidArgument("name", "the name of the user is required")
	}
	if utf8.RuneCountInString(name) > MaxUserNameLength {
		return "", apperror.InvalidArgument("name", "the name of the user is too long")
	}
	return name, nil
}

// ValidateEmail returns the trimmed, lower-cased address if it is
// syntactically valid.
func ValidateEmail(v string) (string, error) {
	email := NormalizeEmail(v)
	if _, err := emailaddress.Parse(email); err != nil {
		return "", apperror.InvalidArgument("email", "invalid email")
	}
	return email, nil
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func ValidatePassword(v string) error {
	if len(v) > MaxPasswordBytes {
		return apperror.InvalidArgument("password", "the password must be at most 72 bytes")
	}
	return nil
}

func ValidateTaskName(v string) (string, error) {
	name := strings.TrimSpace(v)
	if name == "" {
		return "", apperror.InvalidArgument("name", "the name of the task is required")
	}
	if utf8.RuneCountInString(name) > MaxTaskNameLength {
		return "", apperror.InvalidArgument("name", "the name of the task is too long")
	}
	return name, nil
}

func ValidateTaskStatus(v int) (int, error) {
	if v != TaskStatusTodo && v != TaskStatusDone {
		return 0, apperror.InvalidArgument("status", "the status of the task must be 0 or 1")
	}
	return v, nil
}
