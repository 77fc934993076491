// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"socialhub/internal/models"
	"socialhub/internal/observability"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	List(ctx context.Context) ([]models.Like, error)
	GetByID(ctx context.Context, id uint) (*models.Like, error)
	Create(ctx context.Context, like *models.Like) error
	// DeleteByPost removes the like only when it exists and belongs to the
	// given post; otherwise it is a silent no-op.
	DeleteByPost(ctx context.Context, postID, likeID uint) error
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) List(ctx context.Context) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).Order("id").Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

func (r *likeRepository) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	var like models.Like
	if err := r.db.WithContext(ctx).First(&like, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Like", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &like, nil
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		// A caller-supplied id may collide with an existing row.
		return translateError(err, "Like with this ID already exists")
	}
	observability.EntityWrites.WithLabelValues("like", "create").Inc()
	return nil
}

func (r *likeRepository) DeleteByPost(ctx context.Context, postID, likeID uint) error {
	if err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ?", likeID, postID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
