package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-notes-auth/internal/logger"
	"github.com/MKhiriev/go-notes-auth/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB with the dialect-specific pieces the repositories need:
// the goose dialect, the squirrel placeholder format and the driver error
// classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}
	return nil
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}
