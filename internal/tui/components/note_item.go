package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/tui/theme"
)

// RenderNoteItem renders one row of the notes list: the title followed by a
// wrapped, truncated preview of the description
func RenderNoteItem(note *models.Note, selected bool, width int) string {
	contentWidth := max(width-noteItemPadding, 1)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Normal))
	border := lipgloss.NormalBorder()
	rowStyle := lipgloss.NewStyle().
		Width(width).
		Height(NoteItemHeight).
		MaxHeight(NoteItemHeight).
		PaddingLeft(1).
		BorderLeft(true).
		BorderStyle(border).
		BorderForeground(lipgloss.Color(theme.Subtle))

	if selected {
		titleStyle = titleStyle.Foreground(lipgloss.Color(theme.Highlight))
		rowStyle = rowStyle.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Background(lipgloss.Color(theme.SelectedBg))
	}

	preview := previewLines(note.Description, contentWidth)
	return rowStyle.Render(titleStyle.Render(note.Title) + "\n" + subtleStyle().Render(preview))
}

// previewLines wraps s at width and keeps the first few lines, marking
// truncation with an ellipsis
func previewLines(s string, width int) string {
	flat := strings.Join(strings.Fields(s), " ")
	lines := strings.Split(wordwrap.String(flat, width), "\n")
	if len(lines) <= noteItemPreviewLines {
		return strings.Join(lines, "\n")
	}
	lines = lines[:noteItemPreviewLines]
	lines[len(lines)-1] += "…"
	return strings.Join(lines, "\n")
}
