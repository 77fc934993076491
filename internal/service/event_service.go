package service

import (
	"context"

	"socialhub/internal/export"
	"socialhub/internal/models"
	"socialhub/internal/observability"
	"socialhub/internal/repository"
)

const (
	maxEventNameLen        = 30
	maxEventDescriptionLen = 500
)

// EventService provides event management and participation logic.
type EventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

// NewEventService returns a new EventService.
func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

func validateEvent(event *models.Event) error {
	if event.Name == "" {
		return models.NewValidationError("Name is required")
	}
	if len(event.Name) > maxEventNameLen {
		return models.NewValidationError("Name too long (max 30 characters)")
	}
	if len(event.Description) > maxEventDescriptionLen {
		return models.NewValidationError("Description too long (max 500 characters)")
	}
	if event.StartTime.IsZero() {
		return models.NewValidationError("Start time is required")
	}
	return nil
}

// ListEvents returns all events ordered by id.
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.List(ctx)
}

// GetEvent returns a single event with its participant set.
func (s *EventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// CreateEvent persists a new event.
func (s *EventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent copies name, description, start time and organizer onto an
// existing event.
func (s *EventService) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByID(ctx, event.ID)
}

// DeleteEvent removes an event.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	return s.eventRepo.Delete(ctx, id)
}

// SearchEvents returns events whose name matches the term exactly.
func (s *EventService) SearchEvents(ctx context.Context, term string) ([]models.Event, error) {
	return s.eventRepo.Search(ctx, term)
}

// SearchPartialEvents returns events whose name contains the term.
func (s *EventService) SearchPartialEvents(ctx context.Context, term string) ([]models.Event, error) {
	return s.eventRepo.SearchPartial(ctx, term)
}

// JoinEvent adds the user to the event's participant set. It fails with
// NotFound when the event or user is absent and with Conflict when the user
// already joined. Two concurrent joins may both pass the read check; the
// join table then rejects the second insert with the same Conflict.
func (s *EventService) JoinEvent(ctx context.Context, eventID, userID uint) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	joined, err := s.eventRepo.HasParticipant(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if joined {
		return models.NewConflictError("User is already part of the event")
	}

	return s.eventRepo.AddParticipant(ctx, event, user)
}

// Export renders all events into a spreadsheet workbook.
func (s *EventService) Export(ctx context.Context) ([]byte, error) {
	span, ctx := observability.NewSpan(ctx, "export.events")
	defer span.End()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	observability.SpreadsheetExports.WithLabelValues("event").Inc()
	return export.Workbook(export.EventsSheet(events))
}
