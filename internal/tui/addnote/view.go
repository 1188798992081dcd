package addnote

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jot/internal/tui/theme"
)

const (
	dialogInnerWidth = 50
	dialogPadding    = 2
)

// View renders the dialog box, or "" while closed
func (d *Dialog) View() string {
	if !d.open {
		return ""
	}

	closeMarker := "✕ " + d.keys.Close.Help().Key
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Highlight)).
			Width(dialogInnerWidth-lipgloss.Width(closeMarker)).
			Render("Add a new note"),
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(closeMarker),
	)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, d.cancel.View(), "  ", d.submit.View())
	buttons = lipgloss.NewStyle().
		Width(dialogInnerWidth).
		Align(lipgloss.Right).
		Render(buttons)

	body := strings.Join([]string{
		header,
		d.title.View(),
		d.description.View(),
		buttons,
		d.helpLine(),
	}, "\n\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(1, dialogPadding).
		Render(body)
}

func (d *Dialog) helpLine() string {
	var parts []string
	for _, b := range d.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(strings.Join(parts, " • "))
}
