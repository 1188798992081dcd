package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/jot/internal/models"
)

func TestPreviewLinesTruncates(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out := previewLines(long, 20)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, noteItemPreviewLines)
	assert.True(t, strings.HasSuffix(out, "…"))
}

func TestPreviewLinesShortText(t *testing.T) {
	assert.Equal(t, "Buy milk and eggs", previewLines("Buy milk\nand   eggs", 40))
}

func TestRenderNoteItem(t *testing.T) {
	note := &models.Note{Title: "Groceries", Description: "Buy milk and eggs"}

	out := RenderNoteItem(note, true, 40)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "Buy milk and eggs")
}

func TestRenderDescriptionEmpty(t *testing.T) {
	assert.Contains(t, RenderDescription(DescriptionProps{Width: 40}), "No description")
}

func TestRenderDescriptionMarkdown(t *testing.T) {
	out := RenderDescription(DescriptionProps{Description: "Buy **milk**", Width: 40})
	assert.Contains(t, out, "milk")
	assert.Equal(t, out, strings.TrimSpace(out))
}

func TestRenderStatusBarFillsWidth(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 40, Left: "jot", Right: "n new note"})
	assert.Equal(t, 40, lipgloss.Width(out))
}
