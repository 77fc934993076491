// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"socialhub/internal/models"
	"socialhub/internal/observability"

	"gorm.io/gorm"
)

// FriendshipRepository defines persistence operations for friendships.
type FriendshipRepository interface {
	List(ctx context.Context) ([]models.Friendship, error)
	GetByID(ctx context.Context, id uint) (*models.Friendship, error)
	Create(ctx context.Context, friendship *models.Friendship) error
	Delete(ctx context.Context, id uint) error
}

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository creates a new friendship repository
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) List(ctx context.Context) ([]models.Friendship, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).Order("id").Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return friendships, nil
}

func (r *friendshipRepository) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).First(&friendship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friendship", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

func (r *friendshipRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	if err := r.db.WithContext(ctx).Create(friendship).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.EntityWrites.WithLabelValues("friendship", "create").Inc()
	return nil
}

func (r *friendshipRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Friendship{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Friendship", id)
	}
	observability.EntityWrites.WithLabelValues("friendship", "delete").Inc()
	return nil
}
