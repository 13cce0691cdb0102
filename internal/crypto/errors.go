package crypto

import "errors"

var (
	ErrUnknownScheme    = errors.New("unknown password scheme")
	ErrMalformedHash    = errors.New("stored password hash is malformed")
	ErrIncompatibleHash = errors.New("stored password hash uses an unsupported version")
	ErrEmptyPassword    = errors.New("password is empty")
)
