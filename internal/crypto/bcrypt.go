package crypto

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a bcrypt [PasswordHasher] with
// [bcrypt.DefaultCost].
func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (b *bcryptHasher) Scheme() string {
	return SchemeBcrypt
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}

	return string(hashed), nil
}

func (b *bcryptHasher) Verify(password, stored string) (bool, error) {
	if !isBcrypt(stored) {
		return false, ErrMalformedHash
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

func isBcrypt(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}
