package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jot/internal/tui/state"
)

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.AddNote:
		return m.handleAddNote()
	case km.DeleteNote:
		return m.handleDeleteNote()
	case km.NextNote, "down":
		m.AppState.MoveSelection(1)
		m.AppState.EnsureVisible(m.listCapacity())
	case km.PrevNote, "up":
		m.AppState.MoveSelection(-1)
		m.AppState.EnsureVisible(m.listCapacity())
	}

	return m, nil
}

// handleAddNote opens the add note dialog
func (m Model) handleAddNote() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.AddNoteMode)
	return m, m.AddNote.SetOpen(true)
}

// handleDeleteNote deletes the selected note
func (m Model) handleDeleteNote() (tea.Model, tea.Cmd) {
	selected := m.AppState.SelectedNote()
	if selected == nil {
		return m, nil
	}
	return m, deleteNoteCmd(m.Ctx, m.Notes, selected.ID)
}
