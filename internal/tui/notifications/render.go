package notifications

import "charm.land/lipgloss/v2"

// Render renders a notification banner based on its level
func Render(n Notification) string {
	st := styleFor(n.Level)

	headerText := st.icon + " " + st.title
	width := max(lipgloss.Width(headerText), lipgloss.Width(n.Message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Width(width).
		Render(n.Message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.background)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}
