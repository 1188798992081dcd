package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jot/internal/tui/notifications"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.AppState.EnsureVisible(m.listCapacity())
		return m, nil

	case RefreshMsg:
		next := listenForEvents(m.Ctx, m.EventChan)
		if msg.Event.UserID != m.UserID {
			return m, next
		}
		return m, tea.Batch(loadNotesCmd(m.Ctx, m.Notes, m.UserID), next)

	case NotesLoadedMsg:
		if msg.Err != nil {
			slog.Error("Error reloading notes", "user_id", m.UserID, "error", msg.Err)
			m.NotificationState.Add(notifications.LevelError, "Error loading notes")
			return m, nil
		}
		m.AppState.SetNotes(msg.Notes)
		m.AppState.EnsureVisible(m.listCapacity())
		return m, nil

	case NoteCreatedMsg:
		if msg.Err != nil {
			slog.Error("Error creating note", "user_id", m.UserID, "error", msg.Err)
			m.NotificationState.Add(notifications.LevelError, "Error creating note")
			return m, nil
		}
		m.NotificationState.Add(notifications.LevelInfo, fmt.Sprintf("Added %q", msg.Note.Title))
		return m, m.reloadAfterWrite()

	case NoteDeletedMsg:
		if msg.Err != nil {
			slog.Error("Error deleting note", "note_id", msg.ID, "error", msg.Err)
			m.NotificationState.Add(notifications.LevelError, "Error deleting note")
			return m, nil
		}
		m.AppState.RemoveNote(msg.ID.ToInt())
		m.AppState.EnsureVisible(m.listCapacity())
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.UiState.Mode() {
		case state.AddNoteMode:
			return m, m.AddNote.Update(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	// The dialog's inputs need non-key messages too (cursor blink)
	if m.UiState.Mode() == state.AddNoteMode {
		return m, m.AddNote.Update(msg)
	}
	return m, nil
}

// reloadAfterWrite reloads the list unless the event bus will trigger it
func (m Model) reloadAfterWrite() tea.Cmd {
	if m.EventChan != nil {
		return nil
	}
	return loadNotesCmd(m.Ctx, m.Notes, m.UserID)
}
