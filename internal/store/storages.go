package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-auth/internal/config"
	"github.com/MKhiriev/go-notes-auth/internal/logger"
)

// Storages bundles the repositories used by the service layer together with
// the connection backing them.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages selects the backend from cfg.DB.DSN, connects, applies
// migrations and builds the repositories:
//   - "postgres://" / "postgresql://" → PostgreSQL;
//   - "file:" prefix or ".db" suffix  → SQLite;
//   - empty                           → in-memory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch backend(cfg.DB.DSN) {
	case backendMemory:
		log.Warn().Str("func", "NewStorages").Msg("no database DSN configured, using in-memory user store")
		return &Storages{UserRepository: NewMemoryUserRepository()}, nil
	case backendPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case backendSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

const (
	backendUnknown = iota
	backendMemory
	backendPostgres
	backendSQLite
)

func backend(dsn string) int {
	switch {
	case dsn == "":
		return backendMemory
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return backendPostgres
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"):
		return backendSQLite
	default:
		return backendUnknown
	}
}
