package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It serves both PostgreSQL and SQLite; the dialect differences live in
// [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByEmail implements [UserRepository].
//
// Error handling:
//   - no row → [ErrNoUserWasFound];
//   - retryable driver error → [ErrStorageUnavailable];
//   - any other driver error → [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := findUserByEmailQuery(r.db.placeholder, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Email, &user.Password, timestamp{&user.CreatedAt})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", "*userRepository.FindUserByEmail").Msg("no user with requested email")
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, r.wrapError(err)
	}

	return user, nil
}

// CreateUser implements [UserRepository]. The INSERT returns all columns via
// a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists];
//   - retryable driver error → [ErrStorageUnavailable];
//   - any other driver error → [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := createUserQuery(r.db.placeholder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.UserID, &created.Email, &created.Password, timestamp{&created.CreatedAt})
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, r.wrapError(err)
	}

	return created, nil
}

func (r *userRepository) wrapError(err error) error {
	if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
