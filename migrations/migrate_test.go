// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB itself

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "mssql")
	if err == nil || !strings.Contains(err.Error(), "unsupported dialect") {
		t.Fatalf("expected unsupported dialect error, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// applying twice is a no-op
	if err := Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	if _, err := db.Exec(`INSERT INTO users (email, password) VALUES ('a@b.com', 'p')`); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO users (email, password) VALUES ('a@b.com', 'q')`); err == nil {
		t.Fatal("expected unique constraint on email")
	}
}
