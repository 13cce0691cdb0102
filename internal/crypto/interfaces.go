package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account passwords into storable representations and
// checks candidate passwords against them.
//
// Implementations never return the plaintext and compare in constant time.
type PasswordHasher interface {
	// Scheme returns the scheme name the hasher produces, e.g. "argon2id".
	Scheme() string

	// Hash encodes password for storage.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored value.
	// A malformed stored value yields ErrMalformedHash.
	Verify(password, stored string) (bool, error)
}
