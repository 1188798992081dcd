package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/jot/internal/database"
	"github.com/thenoetrevino/jot/internal/events"
	"github.com/thenoetrevino/jot/internal/models"
	"github.com/thenoetrevino/jot/internal/types"
)

// Service defines all note-related business operations
type Service interface {
	// Read operations
	ListNotes(ctx context.Context, userID string) ([]*models.Note, error)
	GetNote(ctx context.Context, noteID types.NoteID) (*models.Note, error)

	// Write operations
	CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, noteID types.NoteID) error
}

// CreateNoteRequest encapsulates all data needed to create a note
type CreateNoteRequest struct {
	UserID      string
	Title       string
	Description string
}

// Draft returns the title and description as a NoteDraft for validation
func (r CreateNoteRequest) Draft() models.NoteDraft {
	return models.NoteDraft{Title: r.Title, Description: r.Description}
}

// service implements Service interface
type service struct {
	repo        database.NoteRepository
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// NewService creates a new note service. eventClient may be nil; a nil
// logger falls back to slog.Default().
func NewService(repo database.NoteRepository, eventClient events.EventPublisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:        repo,
		eventClient: eventClient,
		logger:      logger,
	}
}

// CreateNote validates and persists a note, then announces it on the event bus
func (s *service) CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error) {
	if err := validateCreateNote(req); err != nil {
		return nil, err
	}

	note, err := s.repo.CreateNote(ctx, req.UserID, req.Title, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("note created", "note_id", note.ID, "user_id", note.UserID)
	s.publish(events.EventNoteCreated, note.ID, note.UserID)

	return note, nil
}

// ListNotes returns the notes of a user, newest first
func (s *service) ListNotes(ctx context.Context, userID string) ([]*models.Note, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	notes, err := s.repo.GetNotesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetNote returns a single note
func (s *service) GetNote(ctx context.Context, noteID types.NoteID) (*models.Note, error) {
	if noteID <= 0 {
		return nil, ErrInvalidNoteID
	}

	note, err := s.repo.GetNoteByID(ctx, noteID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// DeleteNote removes a note and announces the removal
func (s *service) DeleteNote(ctx context.Context, noteID types.NoteID) error {
	if noteID <= 0 {
		return ErrInvalidNoteID
	}

	note, err := s.GetNote(ctx, noteID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteNote(ctx, noteID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Info("note deleted", "note_id", noteID, "user_id", note.UserID)
	s.publish(events.EventNoteDeleted, noteID, note.UserID)
	return nil
}

// validateCreateNote applies the same bounds as the add note dialog
func validateCreateNote(req CreateNoteRequest) error {
	if req.UserID == "" {
		return ErrEmptyUserID
	}
	if models.ValidateField(models.FieldTitle, req.Title).Invalid {
		return ErrInvalidTitle
	}
	if models.ValidateField(models.FieldDescription, req.Description).Invalid {
		return ErrInvalidDescription
	}
	return nil
}

// publish sends a note event if an event client exists
func (s *service) publish(eventType events.EventType, noteID types.NoteID, userID string) {
	events.Publish(s.eventClient, events.Event{
		Type:   eventType,
		NoteID: noteID,
		UserID: userID,
	})
}
