package adapter

import "errors"

// Errors returned by [ServerAdapter] for non-2xx responses. The server's
// message is appended, so match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrNotAuthenticated = errors.New("no token set, log in first")
)
