package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email is not a valid address")
	ErrEmptyPassword = errors.New("password is required")
	ErrLongPassword  = errors.New("password is too long")
)
