package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/jot/internal/config"
	"github.com/thenoetrevino/jot/internal/database"
	"github.com/thenoetrevino/jot/internal/events"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/services/note"
	"github.com/thenoetrevino/jot/internal/testutil"
	"github.com/thenoetrevino/jot/internal/tui/notifications"
	"github.com/thenoetrevino/jot/internal/tui/state"
	"github.com/thenoetrevino/jot/internal/types"
)

// ============================================================================
// Test Helpers
// ============================================================================

func testConfig() *config.Config {
	return config.Default()
}

func setupTestModel(t *testing.T, bus events.EventPublisher) (Model, note.Service) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := note.NewService(database.NewRepository(db), bus, nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return InitialModel(ctx, svc, testConfig(), bus, "u1"), svc
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func press(t *testing.T, m Model, k tea.Key) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, tea.KeyPressMsg(k))
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, tea.Key{Code: r, Text: string(r)})
	}
	return m
}

// drain runs cmd and feeds its message back into the model, following
// command chains until none are left
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		m, cmd = send(t, m, msg)
	}
	return m
}

var (
	keyTab   = tea.Key{Code: tea.KeyTab}
	keyEsc   = tea.Key{Code: tea.KeyEsc}
	keyCtrlS = tea.Key{Code: 's', Mod: tea.ModCtrl}
)

type failingService struct {
	note.Service
	err error
}

func (f failingService) CreateNote(context.Context, note.CreateNoteRequest) (*models.Note, error) {
	return nil, f.err
}

func (f failingService) ListNotes(context.Context, string) ([]*models.Note, error) {
	return []*models.Note{}, nil
}

// ============================================================================
// Tests
// ============================================================================

func TestInitialModelLoadsNotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestNote(t, db, "u1", "First", "the first note")
	testutil.CreateTestNote(t, db, "u1", "Second", "the second note")
	testutil.CreateTestNote(t, db, "u2", "Other", "someone else's")

	svc := note.NewService(database.NewRepository(db), nil, nil)
	m := InitialModel(context.Background(), svc, testConfig(), nil, "u1")

	require.Len(t, m.AppState.Notes(), 2)
	assert.Equal(t, "Second", m.AppState.Notes()[0].Title)
	assert.Nil(t, m.Init(), "no listener without an event bus")
}

func TestAddNoteFlow(t *testing.T) {
	m, svc := setupTestModel(t, nil)

	m, _ = press(t, m, tea.Key{Code: 'n', Text: "n"})
	assert.Equal(t, state.AddNoteMode, m.UiState.Mode())
	assert.True(t, m.AddNote.IsOpen())

	m = typeText(t, m, "Groceries")
	m, _ = press(t, m, keyTab)
	m = typeText(t, m, "Buy milk and eggs")

	m, cmd := press(t, m, keyCtrlS)
	assert.Equal(t, state.NormalMode, m.UiState.Mode(), "dialog closes before the store answers")
	assert.False(t, m.AddNote.IsOpen())
	require.NotNil(t, cmd)

	m = drain(t, m, cmd)

	require.Len(t, m.AppState.Notes(), 1)
	assert.Equal(t, "Groceries", m.AppState.Notes()[0].Title)

	stored, err := svc.ListNotes(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Buy milk and eggs", stored[0].Description)
}

func TestAddNoteKeysDoNotLeakIntoList(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	m, _ = press(t, m, tea.Key{Code: 'n', Text: "n"})
	// q and d are list bindings but must be typed into the dialog here
	m = typeText(t, m, "qdn")

	assert.Equal(t, state.AddNoteMode, m.UiState.Mode())
	assert.Equal(t, "qdn", m.AddNote.Draft().Title)
}

func TestEscCancelsDialog(t *testing.T) {
	m, svc := setupTestModel(t, nil)

	m, _ = press(t, m, tea.Key{Code: 'n', Text: "n"})
	m = typeText(t, m, "ab")
	m, cmd := press(t, m, keyEsc)

	assert.Nil(t, cmd)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.True(t, m.AddNote.Draft().IsEmpty())

	stored, err := svc.ListNotes(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestInvalidTitleStaysInDialog(t *testing.T) {
	m, _ := setupTestModel(t, nil)

	m, _ = press(t, m, tea.Key{Code: 'n', Text: "n"})
	m = typeText(t, m, "AB")
	m, _ = press(t, m, keyTab)
	m = typeText(t, m, "long enough description")

	m, cmd := press(t, m, keyCtrlS)
	assert.Nil(t, cmd)
	assert.Equal(t, state.AddNoteMode, m.UiState.Mode())
}

func TestStoreErrorBecomesNotification(t *testing.T) {
	svc := failingService{err: errors.New("disk full")}
	m := InitialModel(context.Background(), svc, testConfig(), nil, "u1")

	m, _ = press(t, m, tea.Key{Code: 'n', Text: "n"})
	m = typeText(t, m, "Groceries")
	m, _ = press(t, m, keyTab)
	m = typeText(t, m, "Buy milk and eggs")
	m, cmd := press(t, m, keyCtrlS)

	m = drain(t, m, cmd)

	require.True(t, m.NotificationState.HasAny())
	assert.Equal(t, notifications.LevelError, m.NotificationState.All()[0].Level)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestNavigationAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestNote(t, db, "u1", "Oldest", "the first note")
	testutil.CreateTestNote(t, db, "u1", "Newest", "the second note")
	svc := note.NewService(database.NewRepository(db), nil, nil)
	m := InitialModel(context.Background(), svc, testConfig(), nil, "u1")

	m, _ = press(t, m, tea.Key{Code: 'j', Text: "j"})
	assert.Equal(t, "Oldest", m.AppState.SelectedNote().Title)
	m, _ = press(t, m, tea.Key{Code: 'k', Text: "k"})
	assert.Equal(t, "Newest", m.AppState.SelectedNote().Title)

	m, cmd := press(t, m, tea.Key{Code: 'd', Text: "d"})
	m = drain(t, m, cmd)

	require.Len(t, m.AppState.Notes(), 1)
	assert.Equal(t, "Oldest", m.AppState.Notes()[0].Title)
}

func TestDeleteOnEmptyListIsNoop(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	_, cmd := press(t, m, tea.Key{Code: 'd', Text: "d"})
	assert.Nil(t, cmd)
}

func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t, nil)
	_, cmd := press(t, m, tea.Key{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRefreshFromEventBus(t *testing.T) {
	bus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(func() { _ = bus.Close() })

	m, svc := setupTestModel(t, bus)
	listen := m.Init()
	require.NotNil(t, listen)

	// A write from elsewhere in the process, e.g. the CLI
	_, err := svc.CreateNote(context.Background(), note.CreateNoteRequest{
		UserID: "u1", Title: "From CLI", Description: "added without the dialog",
	})
	require.NoError(t, err)

	msg := listen()
	refresh, ok := msg.(RefreshMsg)
	require.True(t, ok)
	assert.Equal(t, events.EventNoteCreated, refresh.Event.Type)

	m, cmd := send(t, m, refresh)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)

	m, _ = send(t, m, batch[0]())
	require.Len(t, m.AppState.Notes(), 1)
	assert.Equal(t, "From CLI", m.AppState.Notes()[0].Title)
}

func TestRefreshForOtherUserOnlyKeepsListening(t *testing.T) {
	bus := events.NewBus(events.DefaultBufferSize)
	t.Cleanup(func() { _ = bus.Close() })
	m, _ := setupTestModel(t, bus)

	_, cmd := send(t, m, RefreshMsg{Event: events.Event{
		Type: events.EventNoteCreated, NoteID: types.NoteIDFromInt(1), UserID: "u2",
	}})
	require.NotNil(t, cmd)

	// The returned command is the listener itself; it blocks until the
	// next event, so deliver one
	require.NoError(t, bus.SendEvent(events.Event{Type: events.EventNoteDeleted, UserID: "u1"}))
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		assert.IsType(t, RefreshMsg{}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not return")
	}
}

func TestViewLayersDialog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestNote(t, db, "u1", "Groceries", "Buy milk and eggs")
	svc := note.NewService(database.NewRepository(db), nil, nil)
	m := InitialModel(context.Background(), svc, testConfig(), nil, "u1")

	assert.Equal(t, "Loading...", m.View().Content)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()
	assert.True(t, view.AltScreen)
	assert.Contains(t, view.Content, "Groceries")
	assert.NotContains(t, view.Content, "Add a new note")

	m, _ = press(t, m, tea.Key{Code: 'n', Text: "n"})
	assert.Contains(t, m.View().Content, "Add a new note")
}

func TestLongListScrollsWithSelection(t *testing.T) {
	m, svc := setupTestModel(t, nil)
	for i := 1; i <= 30; i++ {
		_, err := svc.CreateNote(context.Background(), note.CreateNoteRequest{
			UserID:      "u1",
			Title:       fmt.Sprintf("Note %02d", i),
			Description: fmt.Sprintf("Description for note number %d", i),
		})
		require.NoError(t, err)
	}
	notes, err := svc.ListNotes(context.Background(), "u1")
	require.NoError(t, err)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = send(t, m, NotesLoadedMsg{Notes: notes})

	for range 25 {
		m, _ = press(t, m, tea.Key{Code: 'j', Text: "j"})
	}
	require.Equal(t, 25, m.AppState.Selected())

	content := m.View().Content
	assert.LessOrEqual(t, lipgloss.Height(content), 30)
	assert.Contains(t, content, m.AppState.SelectedNote().Title)
	assert.Contains(t, content, "more above")
	assert.Positive(t, m.AppState.ScrollOffset())

	// Back to the top brings the first note into view again
	for range 25 {
		m, _ = press(t, m, tea.Key{Code: 'k', Text: "k"})
	}
	assert.Equal(t, 0, m.AppState.ScrollOffset())
	content = m.View().Content
	assert.Contains(t, content, notes[0].Title)
	assert.Contains(t, content, "more below")
}
