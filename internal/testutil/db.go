package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/jot/internal/database"
	"github.com/thenoetrevino/jot/internal/types"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// :memory: is per connection, so pin the pool to one
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestNote inserts a note directly through the repository and returns its ID
func CreateTestNote(t *testing.T, db *sql.DB, userID, title, description string) types.NoteID {
	t.Helper()
	note, err := database.NewRepository(db).CreateNote(context.Background(), userID, title, description)
	if err != nil {
		t.Fatalf("Failed to create test note: %v", err)
	}
	return note.ID
}
