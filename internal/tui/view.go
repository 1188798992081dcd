package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jot/internal/tui/components"
	"github.com/thenoetrevino/jot/internal/tui/layers"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// View renders the notes list with the add note dialog and notifications
// layered on top
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	var overlays []*lipgloss.Layer
	if m.UiState.Mode() == state.AddNoteMode {
		overlays = append(overlays,
			layers.CreateCenteredLayer(m.AddNote.View(), m.UiState.Width(), m.UiState.Height()))
	}
	overlays = append(overlays, m.NotificationState.Layers()...)

	view.Content = layers.Compose(m.viewNotes(), overlays...)
	return view
}

// viewNotes renders the list pane, the preview pane and the status bar
func (m Model) viewNotes() string {
	width := m.UiState.Width()
	paneHeight := m.paneHeight()

	listWidth := max(width/listWidthDivisor, minListWidth)
	previewWidth := max(width-listWidth-4, 1)

	list := paneStyle().Width(listWidth).Height(paneHeight).
		Render(clampLines(m.viewList(listWidth-2), paneHeight))
	preview := paneStyle().Width(previewWidth).Height(paneHeight).
		Render(clampLines(m.viewPreview(previewWidth-2), paneHeight))

	km := m.Config.KeyMappings
	status := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Left:  fmt.Sprintf("jot · %s · %d notes", m.UserID, len(m.AppState.Notes())),
		Right: fmt.Sprintf("%s new · %s delete · %s quit", km.AddNote, km.DeleteNote, km.Quit),
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, list, preview),
		status,
	)
}

func (m Model) viewList(width int) string {
	notes := m.AppState.Notes()
	if len(notes) == 0 {
		return emptyStyle().Render(fmt.Sprintf("No notes yet. Press %s to add one.", m.Config.KeyMappings.AddNote))
	}

	start, end := m.AppState.VisibleRange(m.listCapacity())

	rows := make([]string, 0, end-start+listIndicatorLines)
	if start > 0 {
		rows = append(rows, indicatorStyle().Render("▲ more above"))
	} else {
		rows = append(rows, "")
	}
	for i := start; i < end; i++ {
		rows = append(rows, components.RenderNoteItem(notes[i], i == m.AppState.Selected(), width))
	}
	if end < len(notes) {
		rows = append(rows, indicatorStyle().Render("▼ more below"))
	}
	return strings.Join(rows, "\n")
}

// paneHeight is the inner height of the list and preview panes
func (m Model) paneHeight() int {
	return max(m.UiState.Height()-statusBarHeight-paneBorderHeight, 1)
}

// listCapacity is how many notes fit in the list pane
func (m Model) listCapacity() int {
	return max((m.paneHeight()-listIndicatorLines)/components.NoteItemHeight, 1)
}

// clampLines drops whatever does not fit in n lines
func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

func (m Model) viewPreview(width int) string {
	n := m.AppState.SelectedNote()
	if n == nil {
		return ""
	}
	meta := n.CreatedAt.Local().Format("Jan 2, 2006 15:04")
	return components.RenderNotePreview(n.Title, meta, n.Description, width)
}
