package crypto

import (
	"fmt"
	"strings"
)

// Supported password schemes.
const (
	SchemeArgon2id = "argon2id"
	SchemeBcrypt   = "bcrypt"
	SchemePlain    = "plain"
)

// NewPasswordHasher returns the [PasswordHasher] for scheme.
//
// New passwords are always encoded with scheme. Stored values produced by
// one of the other salted schemes are still verified, so switching the
// configured scheme does not lock existing accounts out. Plaintext stored
// values are only accepted when scheme is "plain".
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	var primary PasswordHasher
	switch scheme {
	case SchemeArgon2id:
		primary = NewArgon2Hasher()
	case SchemeBcrypt:
		primary = NewBcryptHasher()
	case SchemePlain:
		return NewPlainHasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}

	return &detectingHasher{
		PasswordHasher: primary,
		argon2:         NewArgon2Hasher(),
		bcrypt:         NewBcryptHasher(),
	}, nil
}

// detectingHasher hashes with the embedded hasher and verifies with
// whichever salted scheme the stored value was produced by.
type detectingHasher struct {
	PasswordHasher
	argon2 PasswordHasher
	bcrypt PasswordHasher
}

func (d *detectingHasher) Verify(password, stored string) (bool, error) {
	switch DetectScheme(stored) {
	case SchemeArgon2id:
		return d.argon2.Verify(password, stored)
	case SchemeBcrypt:
		return d.bcrypt.Verify(password, stored)
	default:
		return false, ErrMalformedHash
	}
}

// DetectScheme guesses the scheme of a stored password value from its
// prefix. Values without a recognised prefix are reported as "plain".
func DetectScheme(stored string) string {
	switch {
	case strings.HasPrefix(stored, argon2Prefix):
		return SchemeArgon2id
	case isBcrypt(stored):
		return SchemeBcrypt
	default:
		return SchemePlain
	}
}
