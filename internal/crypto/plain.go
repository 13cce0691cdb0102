package crypto

import "crypto/subtle"

// plainHasher stores passwords as given. It exists for deployments whose
// credential store already holds plaintext passwords.
type plainHasher struct{}

// NewPlainHasher constructs the "plain" [PasswordHasher].
func NewPlainHasher() PasswordHasher {
	return plainHasher{}
}

func (plainHasher) Scheme() string {
	return SchemePlain
}

func (plainHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	return password, nil
}

func (plainHasher) Verify(password, stored string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1, nil
}
