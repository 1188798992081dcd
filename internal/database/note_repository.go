package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/types"
)

// ErrNotFound is returned when a row addressed by ID does not exist
var ErrNotFound = errors.New("record not found")

const noteColumns = `id, uuid, user_id, title, description, created_at, updated_at`

// NoteRepo handles all note-related database operations.
type NoteRepo struct {
	db *sql.DB
}

// CreateNote inserts a note and returns it with its generated ID and UUID
func (r *NoteRepo) CreateNote(ctx context.Context, userID, title, description string) (*models.Note, error) {
	now := time.Now().UTC()
	note := &models.Note{
		UUID:        uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (uuid, user_id, title, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		note.UUID, note.UserID, note.Title, note.Description, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note %q: %w", title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get note ID after insert: %w", err)
	}
	note.ID = types.NoteIDFromInt(int(id))

	return note, nil
}

// GetNoteByID retrieves a single note
func (r *NoteRepo) GetNoteByID(ctx context.Context, id types.NoteID) (*models.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id.ToInt())

	note, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note %d: %w", id, err)
	}
	return note, nil
}

// GetNotesByUser returns every note of a user, newest first
func (r *NoteRepo) GetNotesByUser(ctx context.Context, userID string) ([]*models.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes for user %q: %w", userID, err)
	}
	defer rows.Close()

	notes := []*models.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// DeleteNote removes a note by ID
func (r *NoteRepo) DeleteNote(ctx context.Context, id types.NoteID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id.ToInt())
	if err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows for note %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	var (
		note models.Note
		id   int
	)
	if err := row.Scan(&id, &note.UUID, &note.UserID, &note.Title, &note.Description,
		&note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	note.ID = types.NoteIDFromInt(id)
	return &note, nil
}
