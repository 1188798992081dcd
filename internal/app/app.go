package app

import (
	"github.com/thenoetrevino/jot/internal/database"
	"github.com/thenoetrevino/jot/internal/events"
	noteservice "github.com/thenoetrevino/jot/internal/services/note"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Event system for live updates, nil when not configured
	eventClient events.EventPublisher

	// Service layer (business logic)
	NoteService noteservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		eventClient: cfg.eventClient,
		NoteService: noteservice.NewService(repo, cfg.eventClient, cfg.logger),
	}
}

// Events returns the event publisher, or nil when live updates are off
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	if a.eventClient != nil {
		return a.eventClient.Close()
	}
	return nil
}
