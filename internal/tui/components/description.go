package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
)

type DescriptionProps struct {
	Description string
	Width       int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders a note description as markdown, falling back to
// the raw text if glamour fails
func RenderDescription(props DescriptionProps) string {
	if props.Description == "" {
		return subtleStyle().Italic(true).Render("No description")
	}

	renderer, err := getRenderer(max(props.Width, 1))
	if err != nil {
		return props.Description
	}
	rendered, err := renderer.Render(props.Description)
	if err != nil {
		return props.Description
	}
	return strings.TrimSpace(rendered)
}

// RenderNotePreview renders the selected note: title, timestamp and the
// markdown body
func RenderNotePreview(title, meta, description string, width int) string {
	heading := lipgloss.NewStyle().Bold(true).Render(title)
	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		subtleStyle().Render(meta),
		"",
		RenderDescription(DescriptionProps{Description: description, Width: width}),
	)
}
