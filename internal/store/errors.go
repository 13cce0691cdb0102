package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStorageUnavailable wraps driver errors classified as [Retryable]:
	// lost connections, lock contention and similar transient conditions.
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")

	// ErrUnsupportedDSN is returned by [NewStorages] for a DSN that selects
	// no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
