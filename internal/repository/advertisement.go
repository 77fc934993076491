// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"socialhub/internal/models"
	"socialhub/internal/observability"

	"gorm.io/gorm"
)

// AdvertisementRepository defines persistence operations for advertisements.
type AdvertisementRepository interface {
	List(ctx context.Context) ([]models.Advertisement, error)
	ListActive(ctx context.Context) ([]models.Advertisement, error)
	GetByID(ctx context.Context, id uint) (*models.Advertisement, error)
	Create(ctx context.Context, ad *models.Advertisement) error
	Update(ctx context.Context, ad *models.Advertisement) error
	Delete(ctx context.Context, id uint) error
}

type advertisementRepository struct {
	db *gorm.DB
}

// NewAdvertisementRepository creates a new advertisement repository
func NewAdvertisementRepository(db *gorm.DB) AdvertisementRepository {
	return &advertisementRepository{db: db}
}

func (r *advertisementRepository) List(ctx context.Context) ([]models.Advertisement, error) {
	var ads []models.Advertisement
	if err := r.db.WithContext(ctx).Order("id").Find(&ads).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ads, nil
}

func (r *advertisementRepository) ListActive(ctx context.Context) ([]models.Advertisement, error) {
	var ads []models.Advertisement
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&ads).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ads, nil
}

func (r *advertisementRepository) GetByID(ctx context.Context, id uint) (*models.Advertisement, error) {
	var ad models.Advertisement
	if err := r.db.WithContext(ctx).First(&ad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Advertisement", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ad, nil
}

func (r *advertisementRepository) Create(ctx context.Context, ad *models.Advertisement) error {
	if err := r.db.WithContext(ctx).Create(ad).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.EntityWrites.WithLabelValues("advertisement", "create").Inc()
	return nil
}

func (r *advertisementRepository) Update(ctx context.Context, ad *models.Advertisement) error {
	res := r.db.WithContext(ctx).
		Model(&models.Advertisement{}).
		Where("id = ?", ad.ID).
		Select("title", "description", "image_url", "destination_url", "is_active").
		Updates(ad)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Advertisement", ad.ID)
	}
	observability.EntityWrites.WithLabelValues("advertisement", "update").Inc()
	return nil
}

func (r *advertisementRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Advertisement{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Advertisement", id)
	}
	observability.EntityWrites.WithLabelValues("advertisement", "delete").Inc()
	return nil
}
