package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJWTManager_GenerateAndParse(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewJWTManager("super-secret", 0)
	m.Now = fixedClock(issued)

	tok, exp, err := m.Generate("u-1", "ann@x.com", "Ann")
	require.NoError(t, err)
	assert.Equal(t, issued.Add(7*24*time.Hour), exp)

	m.Now = fixedClock(issued.Add(time.Hour))
	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, issued.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTManager_Expired(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewJWTManager("secret", time.Hour)
	m.Now = fixedClock(issued)

	tok, _, err := m.Generate("u-1", "ann@x.com", "Ann")
	require.NoError(t, err)

	m.Now = fixedClock(issued.Add(2 * time.Hour))
	_, err = m.Parse(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	tok, _, err := NewJWTManager("right", time.Hour).Generate("u-2", "b@x.com", "B")
	require.NoError(t, err)

	_, err = NewJWTManager("wrong", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTManager_Malformed(t *testing.T) {
	_, err := NewJWTManager("k", time.Hour).Parse("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTManager_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "u-3",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewJWTManager("k", time.Hour).Parse(tok)
	assert.Error(t, err)
}
