package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jot/internal/events"
	"github.com/thenoetrevino/jot/internal/services/note"
	"github.com/thenoetrevino/jot/internal/types"
)

// createNoteCmd hands a note to the store. The dialog has already closed by
// the time this runs.
func createNoteCmd(ctx context.Context, notes note.Service, userID, title, description string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()

		created, err := notes.CreateNote(ctx, note.CreateNoteRequest{
			UserID:      userID,
			Title:       title,
			Description: description,
		})
		return NoteCreatedMsg{Note: created, Err: err}
	}
}

func deleteNoteCmd(ctx context.Context, notes note.Service, id types.NoteID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()
		return NoteDeletedMsg{ID: id, Err: notes.DeleteNote(ctx, id)}
	}
}

func loadNotesCmd(ctx context.Context, notes note.Service, userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, storeTimeout)
		defer cancel()
		list, err := notes.ListNotes(ctx, userID)
		return NotesLoadedMsg{Notes: list, Err: err}
	}
}

// listenForEvents waits for the next store event. Returns nil when live
// refresh is off.
func listenForEvents(ctx context.Context, ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}
