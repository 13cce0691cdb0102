// Package migrations embeds the credential store schema and applies it with
// goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported goose dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies every pending migration for dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errNilDB
	}

	dir, err := migrationsDir(dialect)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}
}
