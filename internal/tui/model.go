package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/events"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/services/note"
	"github.com/thenoetrevino/jot/internal/tui/addnote"
	"github.com/thenoetrevino/jot/internal/tui/notifications"
	"github.com/thenoetrevino/jot/internal/tui/state"
)

// storeTimeout bounds every note store call made from the TUI
const storeTimeout = 5 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Notes  note.Service
	Config *config.Config
	UserID string

	// EventChan delivers store changes; nil when live refresh is off
	EventChan <-chan events.Event

	AppState          *state.AppState
	UiState           *state.UIState
	NotificationState *notifications.State
	AddNote           *addnote.Dialog
}

// InitialModel creates the TUI model and loads the user's notes.
// eventClient may be nil, in which case the list only refreshes after the
// TUI's own writes.
func InitialModel(ctx context.Context, notes note.Service, cfg *config.Config, eventClient events.EventPublisher, userID string) Model {
	m := Model{
		Ctx:               ctx,
		Notes:             notes,
		Config:            cfg,
		UserID:            userID,
		UiState:           state.NewUIState(),
		NotificationState: notifications.NewState(),
	}

	loadCtx, cancel := m.DbContext()
	defer cancel()
	list, err := notes.ListNotes(loadCtx, userID)
	if err != nil {
		slog.Error("Error loading notes", "user_id", userID, "error", err)
		m.NotificationState.Add(notifications.LevelError, "Error loading notes")
		list = []*models.Note{}
	}
	m.AppState = state.NewAppState(list)

	if eventClient != nil {
		ch, err := eventClient.Listen(ctx)
		if err != nil {
			slog.Warn("Live refresh disabled", "error", err)
		} else {
			m.EventChan = ch
		}
	}

	ui := m.UiState
	m.AddNote = addnote.New(addnote.Props{
		UserID: userID,
		OnClose: func() {
			ui.SetMode(state.NormalMode)
		},
		SubmitNote: func(userID, title, description string) tea.Cmd {
			return createNoteCmd(ctx, notes, userID, title, description)
		},
	}, addnote.NewKeyMap(cfg.KeyMappings))

	return m
}

// Init starts listening for store events
func (m Model) Init() tea.Cmd {
	return listenForEvents(m.Ctx, m.EventChan)
}

// DbContext returns a context for a single store call
func (m Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, storeTimeout)
}
