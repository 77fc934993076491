package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"socialhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *models.Event {
	return &models.Event{
		Name:      "launch party",
		StartTime: time.Now().Add(24 * time.Hour),
		UserID:    1,
	}
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		svc := NewEventService(noopEventRepo(), noopUserRepo())
		event := validEvent()
		event.Name = ""
		_, err := svc.CreateEvent(context.Background(), event)
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("name too long", func(t *testing.T) {
		t.Parallel()
		svc := NewEventService(noopEventRepo(), noopUserRepo())
		event := validEvent()
		event.Name = strings.Repeat("x", 31)
		_, err := svc.CreateEvent(context.Background(), event)
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("description too long", func(t *testing.T) {
		t.Parallel()
		svc := NewEventService(noopEventRepo(), noopUserRepo())
		event := validEvent()
		event.Description = strings.Repeat("x", 501)
		_, err := svc.CreateEvent(context.Background(), event)
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
	})
}

func TestEventService_JoinEvent(t *testing.T) {
	t.Parallel()

	t.Run("missing event", func(t *testing.T) {
		t.Parallel()
		events := noopEventRepo()
		events.getByIDFn = func(_ context.Context, id uint) (*models.Event, error) {
			return nil, models.NewNotFoundError("Event", id)
		}
		svc := NewEventService(events, noopUserRepo())
		err := svc.JoinEvent(context.Background(), 9, 1)
		assertAppErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewEventService(noopEventRepo(), users)
		err := svc.JoinEvent(context.Background(), 1, 9)
		assertAppErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("duplicate join conflicts without writing", func(t *testing.T) {
		t.Parallel()
		events := noopEventRepo()
		events.hasParticipantFn = func(context.Context, uint, uint) (bool, error) { return true, nil }
		appended := false
		events.addParticipantFn = func(context.Context, *models.Event, *models.User) error {
			appended = true
			return nil
		}
		svc := NewEventService(events, noopUserRepo())
		err := svc.JoinEvent(context.Background(), 1, 2)
		assertAppErrorCode(t, err, "CONFLICT")
		assert.False(t, appended)
	})

	t.Run("concurrent duplicate surfaces store conflict", func(t *testing.T) {
		t.Parallel()
		events := noopEventRepo()
		events.addParticipantFn = func(context.Context, *models.Event, *models.User) error {
			return models.NewConflictError("User is already part of the event")
		}
		svc := NewEventService(events, noopUserRepo())
		err := svc.JoinEvent(context.Background(), 1, 2)
		assertAppErrorCode(t, err, "CONFLICT")
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		events := noopEventRepo()
		var joinedEvent *models.Event
		var joinedUser *models.User
		events.addParticipantFn = func(_ context.Context, e *models.Event, u *models.User) error {
			joinedEvent, joinedUser = e, u
			return nil
		}
		svc := NewEventService(events, noopUserRepo())
		err := svc.JoinEvent(context.Background(), 1, 2)
		require.NoError(t, err)
		require.NotNil(t, joinedEvent)
		require.NotNil(t, joinedUser)
		assert.Equal(t, uint(1), joinedEvent.ID)
		assert.Equal(t, uint(2), joinedUser.ID)
	})
}
