// Package testsupport builds throwaway databases and podcast fixtures for
// integration tests and local seeding.
package testsupport

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/glebarez/sqlite"

	"podverse-web/internal/repositories"
)

// NewMemoryDB opens a private in-memory SQLite database with the schema applied.
func NewMemoryDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// every connection to :memory: is a new database
	db.SetMaxOpenConns(1)
	if err := repositories.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ConfigureDatabase gives a test its own schema-ready database, dropped on cleanup.
func ConfigureDatabase(tb testing.TB) *sql.DB {
	tb.Helper()
	db, err := NewMemoryDB(context.Background())
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close() })
	return db
}
