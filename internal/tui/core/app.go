package core

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jot/internal/app"
	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App for userID with an initialized Model
func New(ctx context.Context, application *app.App, cfg *config.Config, userID string) *App {
	model := tui.InitialModel(ctx, application.NoteService, cfg, application.Events(), userID)
	return &App{model: &model}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model by delegating to Model.Update
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := a.model.Update(msg)
	if m, ok := updatedModel.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View implements tea.Model
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
