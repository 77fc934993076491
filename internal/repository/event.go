// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"socialhub/internal/models"
	"socialhub/internal/observability"

	"gorm.io/gorm"
)

// EventRepository defines persistence operations for events and their
// participant set.
type EventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, term string) ([]models.Event, error)
	SearchPartial(ctx context.Context, term string) ([]models.Event, error)
	HasParticipant(ctx context.Context, eventID, userID uint) (bool, error)
	AddParticipant(ctx context.Context, event *models.Event, user *models.User) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("id").Find(&events).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Preload("Participants").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Event", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.EntityWrites.WithLabelValues("event", "create").Inc()
	return nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	res := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", event.ID).
		Select("name", "description", "start_time", "user_id").
		Updates(event)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Event", event.ID)
	}
	observability.EntityWrites.WithLabelValues("event", "update").Inc()
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Event", id)
	}
	observability.EntityWrites.WithLabelValues("event", "delete").Inc()
	return nil
}

func (r *eventRepository) Search(ctx context.Context, term string) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Where("name = ?", term).Find(&events).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

func (r *eventRepository) SearchPartial(ctx context.Context, term string) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Where("name LIKE ?", "%"+term+"%").Find(&events).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

func (r *eventRepository) HasParticipant(ctx context.Context, eventID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("event_participants").
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// AddParticipant appends the user to the event's participant set. The join
// table's composite primary key surfaces a concurrent duplicate insert as a
// unique violation, which is reported as the same Conflict the read-side
// guard produces.
func (r *eventRepository) AddParticipant(ctx context.Context, event *models.Event, user *models.User) error {
	if err := r.db.WithContext(ctx).
		Model(event).
		Association("Participants").
		Append(user); err != nil {
		return translateError(err, "User is already part of the event")
	}
	observability.EntityWrites.WithLabelValues("event", "add_participant").Inc()
	return nil
}
