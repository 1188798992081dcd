package state

import "github.com/thenoetrevino/jot/internal/models"

// AppState holds the notes shown in the list and which one is selected.
type AppState struct {
	notes        []*models.Note
	selected     int
	scrollOffset int // index of the first visible note
}

// NewAppState creates an AppState over the given notes.
func NewAppState(notes []*models.Note) *AppState {
	s := &AppState{}
	s.SetNotes(notes)
	return s
}

// Notes returns the loaded notes, newest first.
func (s *AppState) Notes() []*models.Note {
	return s.notes
}

// SetNotes replaces the note list and keeps the selection in bounds.
func (s *AppState) SetNotes(notes []*models.Note) {
	s.notes = notes
	s.clampSelection()
}

// Selected returns the index of the selected note.
func (s *AppState) Selected() int {
	return s.selected
}

// SelectedNote returns the selected note, or nil when the list is empty.
func (s *AppState) SelectedNote() *models.Note {
	if s.selected < 0 || s.selected >= len(s.notes) {
		return nil
	}
	return s.notes[s.selected]
}

// MoveSelection shifts the selection by delta, stopping at either end.
// Returns true if the selection changed.
func (s *AppState) MoveSelection(delta int) bool {
	prev := s.selected
	s.selected += delta
	s.clampSelection()
	return s.selected != prev
}

// RemoveNote drops a note from the list by ID.
func (s *AppState) RemoveNote(id int) {
	for i, n := range s.notes {
		if n.GetID() == id {
			s.notes = append(s.notes[:i:i], s.notes[i+1:]...)
			break
		}
	}
	s.clampSelection()
}

// ScrollOffset returns the index of the first note shown in the list.
func (s *AppState) ScrollOffset() int {
	return s.scrollOffset
}

// VisibleRange returns the [start, end) slice of notes to render when
// maxVisible rows fit, shifted from the current offset just enough to
// include the selection. It does not move the stored offset.
func (s *AppState) VisibleRange(maxVisible int) (start, end int) {
	maxVisible = max(maxVisible, 1)

	start = s.scrollOffset
	if s.selected < start {
		start = s.selected
	}
	if s.selected >= start+maxVisible {
		start = s.selected - maxVisible + 1
	}
	start = min(start, max(len(s.notes)-maxVisible, 0))
	start = max(start, 0)

	return start, min(start+maxVisible, len(s.notes))
}

// EnsureVisible scrolls so the selected note is among the maxVisible rows shown.
func (s *AppState) EnsureVisible(maxVisible int) {
	s.scrollOffset, _ = s.VisibleRange(maxVisible)
}

func (s *AppState) clampSelection() {
	s.selected = min(s.selected, len(s.notes)-1)
	s.selected = max(s.selected, 0)
}
