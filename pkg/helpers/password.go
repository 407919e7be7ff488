package helpers

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes with bcrypt at a fixed cost.
type PasswordHasher struct {
	Cost int
}

func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return PasswordHasher{Cost: cost}
}

// Hash hashes the plain text password using bcrypt; each call gets a fresh salt.
func (h PasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether plain matches the bcrypt hash.
func (h PasswordHasher) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// HashPassword hashes with bcrypt.DefaultCost.
func HashPassword(plain string) (string, error) {
	return NewPasswordHasher(bcrypt.DefaultCost).Hash(plain)
}
