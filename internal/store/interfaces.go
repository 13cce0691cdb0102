package store

import (
	"context"

	"github.com/MKhiriev/go-notes-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store consulted by the auth service.
type UserRepository interface {
	// FindUserByEmail returns the first user whose email equals email
	// (exact, case-sensitive match). Returns [ErrNoUserWasFound] when there
	// is none.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// CreateUser persists user and returns it with UserID and CreatedAt
	// populated. Returns [ErrEmailAlreadyExists] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// ErrorClassificator decides whether a failed database operation may succeed
// when attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
