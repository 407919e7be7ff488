package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of a login token.
const DefaultTokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and verifies login tokens. It holds no session state:
// every Parse re-checks signature, algorithm and expiry.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTManager{Secret: []byte(secret), TTL: ttl, Now: time.Now}
}

// Claims carries the identity a token was issued for. Subject holds the user id.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (m *JWTManager) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

// Generate issues a token for the user, valid from now for m.TTL.
func (m *JWTManager) Generate(userID, email, name string) (string, time.Time, error) {
	iat := m.now()
	exp := iat.Add(m.TTL)
	claims := &Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return s, exp, nil
}

func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
