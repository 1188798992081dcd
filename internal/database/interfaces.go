// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/types"
)

// NoteRepository defines note persistence operations
type NoteRepository interface {
	CreateNote(ctx context.Context, userID, title, description string) (*models.Note, error)
	GetNoteByID(ctx context.Context, id types.NoteID) (*models.Note, error)
	GetNotesByUser(ctx context.Context, userID string) ([]*models.Note, error)
	DeleteNote(ctx context.Context, id types.NoteID) error
}

// DataStore is everything the services need from storage
type DataStore interface {
	NoteRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
