package note

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/jot/internal/database"
	"github.com/thenoetrevino/jot/internal/events"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/testutil"
	"github.com/thenoetrevino/jot/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestService(t *testing.T, bus events.EventPublisher) Service {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewService(database.NewRepository(db), bus, nil)
}

// failingRepo returns errRepo from every call
type failingRepo struct{}

var errRepo = errors.New("disk on fire")

func (failingRepo) CreateNote(context.Context, string, string, string) (*models.Note, error) {
	return nil, errRepo
}

func (failingRepo) GetNoteByID(context.Context, types.NoteID) (*models.Note, error) {
	return nil, errRepo
}

func (failingRepo) GetNotesByUser(context.Context, string) ([]*models.Note, error) {
	return nil, errRepo
}

func (failingRepo) DeleteNote(context.Context, types.NoteID) error {
	return errRepo
}

// ============================================================================
// CreateNote
// ============================================================================

func TestCreateNote_Success(t *testing.T) {
	svc := newTestService(t, nil)

	note, err := svc.CreateNote(context.Background(), CreateNoteRequest{
		UserID:      "u1",
		Title:       "Groceries",
		Description: "Buy milk and eggs",
	})
	require.NoError(t, err)

	assert.Positive(t, note.ID.ToInt())
	assert.Equal(t, "u1", note.UserID)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "Buy milk and eggs", note.Description)
}

func TestCreateNote_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateNoteRequest
		wantErr error
	}{
		{
			name:    "empty user",
			req:     CreateNoteRequest{Title: "Groceries", Description: "Buy milk and eggs"},
			wantErr: ErrEmptyUserID,
		},
		{
			name:    "title too short",
			req:     CreateNoteRequest{UserID: "u1", Title: "AB", Description: "Buy milk and eggs"},
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "title too long",
			req:     CreateNoteRequest{UserID: "u1", Title: strings.Repeat("t", 16), Description: "Buy milk and eggs"},
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "description too short",
			req:     CreateNoteRequest{UserID: "u1", Title: "Groceries", Description: "milk"},
			wantErr: ErrInvalidDescription,
		},
		{
			name:    "description too long",
			req:     CreateNoteRequest{UserID: "u1", Title: "Groceries", Description: strings.Repeat("d", 201)},
			wantErr: ErrInvalidDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, nil)

			note, err := svc.CreateNote(context.Background(), tt.req)
			assert.Nil(t, note)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateNote_BoundaryLengthsAccepted(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.CreateNote(ctx, CreateNoteRequest{UserID: "u1", Title: "abc", Description: strings.Repeat("d", 8)})
	assert.NoError(t, err)

	_, err = svc.CreateNote(ctx, CreateNoteRequest{UserID: "u1", Title: strings.Repeat("t", 15), Description: strings.Repeat("d", 200)})
	assert.NoError(t, err)
}

func TestCreateNote_PublishesEvent(t *testing.T) {
	bus := events.NewBus(0)
	defer bus.Close()

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	svc := newTestService(t, bus)
	note, err := svc.CreateNote(context.Background(), CreateNoteRequest{
		UserID: "u1", Title: "Groceries", Description: "Buy milk and eggs",
	})
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, events.EventNoteCreated, ev.Type)
		assert.Equal(t, note.ID, ev.NoteID)
		assert.Equal(t, "u1", ev.UserID)
	case <-time.After(time.Second):
		t.Fatal("no note_created event published")
	}
}

func TestCreateNote_InvalidDoesNotPublish(t *testing.T) {
	bus := events.NewBus(0)
	defer bus.Close()

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	svc := newTestService(t, bus)
	_, err = svc.CreateNote(context.Background(), CreateNoteRequest{UserID: "u1", Title: "AB", Description: "Buy milk and eggs"})
	require.Error(t, err)

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %v for rejected note", ev.Type)
	default:
	}
}

func TestCreateNote_RepositoryErrorWrapped(t *testing.T) {
	svc := NewService(failingRepo{}, nil, nil)

	_, err := svc.CreateNote(context.Background(), CreateNoteRequest{
		UserID: "u1", Title: "Groceries", Description: "Buy milk and eggs",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errRepo)
	assert.Contains(t, err.Error(), "failed to create note")
}

// ============================================================================
// Reads and deletes
// ============================================================================

func TestListNotes(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.CreateNote(ctx, CreateNoteRequest{UserID: "u1", Title: "First", Description: "the first note"})
	require.NoError(t, err)
	_, err = svc.CreateNote(ctx, CreateNoteRequest{UserID: "u2", Title: "Other", Description: "not for u1 at all"})
	require.NoError(t, err)

	notes, err := svc.ListNotes(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "First", notes[0].Title)

	_, err = svc.ListNotes(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestGetNote_Errors(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.GetNote(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidNoteID)

	_, err = svc.GetNote(ctx, types.NoteID(42))
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDeleteNote(t *testing.T) {
	bus := events.NewBus(0)
	defer bus.Close()

	ch, err := bus.Listen(context.Background())
	require.NoError(t, err)

	svc := newTestService(t, bus)
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, CreateNoteRequest{UserID: "u1", Title: "Groceries", Description: "Buy milk and eggs"})
	require.NoError(t, err)
	<-ch // note_created

	require.NoError(t, svc.DeleteNote(ctx, note.ID))

	select {
	case ev := <-ch:
		assert.Equal(t, events.EventNoteDeleted, ev.Type)
		assert.Equal(t, note.ID, ev.NoteID)
	case <-time.After(time.Second):
		t.Fatal("no note_deleted event published")
	}

	assert.ErrorIs(t, svc.DeleteNote(ctx, note.ID), ErrNoteNotFound)
	assert.ErrorIs(t, svc.DeleteNote(ctx, -1), ErrInvalidNoteID)
}
