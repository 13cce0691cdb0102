package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Login when no account has the requested email.
	ErrNotFound = errors.New("account not found")

	// ErrInvalidCredentials is returned by Login when the password does not
	// match the stored one.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConfiguration is returned when tokens cannot be signed with the
	// configured settings. Not recoverable per request.
	ErrConfiguration = errors.New("auth configuration error")

	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)

// AuthError pairs a sentinel error with the message shown to the client.
type AuthError struct {
	Kind    error
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Kind
}

func newNotFoundError(email string) error {
	return &AuthError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf(`couldn't find account with "%s" email`, email),
	}
}

func newInvalidCredentialsError() error {
	return &AuthError{
		Kind:    ErrInvalidCredentials,
		Message: "check your credentials",
	}
}
