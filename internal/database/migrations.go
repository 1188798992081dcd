package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid TEXT NOT NULL UNIQUE,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Notes are always listed per user, newest first
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_notes_user
		ON notes(user_id, created_at)
	`)
	return err
}

// Migrate runs the schema migrations on an already opened database.
// Used by tests that work against in-memory databases.
func Migrate(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db)
}
