package tui

import (
	"github.com/thenoetrevino/jot/internal/events"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/types"
)

// RefreshMsg carries a store change received from the event bus
type RefreshMsg struct {
	Event events.Event
}

// NotesLoadedMsg carries the result of reloading the notes list
type NotesLoadedMsg struct {
	Notes []*models.Note
	Err   error
}

// NoteCreatedMsg reports the outcome of a submitted note
type NoteCreatedMsg struct {
	Note *models.Note
	Err  error
}

// NoteDeletedMsg reports the outcome of a delete
type NoteDeletedMsg struct {
	ID  types.NoteID
	Err error
}
