package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	a, err := h.Hash("secret")
	require.NoError(t, err)
	b, err := h.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", a)
	assert.NotEqual(t, a, b, "salt should differ per hash")
	assert.True(t, h.Compare(a, "secret"))
	assert.False(t, h.Compare(a, "Secret"))
}

func TestNewPasswordHasher_InvalidCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(99).Cost)
}
