// Package db opens the session database backing the sqlite store.
// The database lives in memory and disappears when it is closed.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SessionDSN names a private in-memory database.
const SessionDSN = ":memory:"

// Open creates a fresh session database with the schema applied.
// The pool is pinned to one connection: every new connection to
// ":memory:" would otherwise see its own empty database.
func Open(ctx context.Context) (*sql.DB, error) {
	database, err := sql.Open("sqlite3", SessionDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(1)
	database.SetConnMaxLifetime(0)

	if err := InitSchema(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// InitSchema applies SchemaSQL to database.
func InitSchema(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, GetSchemaSQL()); err != nil {
		return err
	}
	return nil
}
