package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing field", MissingField("email"), http.StatusBadRequest},
		{"invalid argument", InvalidArgument("name", "bad"), http.StatusBadRequest},
		{"conflict", Conflict("taken"), http.StatusConflict},
		{"not found", NotFound("gone"), http.StatusNotFound},
		{"unauthorized", Unauthorized("nope"), http.StatusUnauthorized},
		{"forbidden", Forbidden("not yours"), http.StatusForbidden},
		{"wrapped", fmt.Errorf("load: %w", NotFound("gone")), http.StatusNotFound},
		{"plain", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("create: %w", MissingField("password"))
	assert.ErrorIs(t, err, ErrMissingField)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, `the field "password" is required`, MissingField("password").Error())
}
