package service

import (
	"context"
	"time"

	"socialhub/internal/cache"
	"socialhub/internal/export"
	"socialhub/internal/models"
	"socialhub/internal/observability"
	"socialhub/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	activeAdsCacheKey = "ads:active"
	activeAdsCacheTTL = 60 * time.Second
)

// AdvertisementService manages advertisement campaigns. The active-only
// listing is the hot path for ad serving, so it is fronted by the redis
// cache and invalidated on every write.
type AdvertisementService struct {
	adRepo repository.AdvertisementRepository
	rdb    *redis.Client
}

// NewAdvertisementService returns a new AdvertisementService. rdb may be
// nil, in which case the active listing always hits the database.
func NewAdvertisementService(adRepo repository.AdvertisementRepository, rdb *redis.Client) *AdvertisementService {
	return &AdvertisementService{adRepo: adRepo, rdb: rdb}
}

func validateAdvertisement(ad *models.Advertisement) error {
	if ad.Title == "" {
		return models.NewValidationError("Advertisement title is required")
	}
	if ad.DestinationURL == "" {
		return models.NewValidationError("Advertisement destination URL is required")
	}
	return nil
}

// ListAdvertisements returns all advertisements ordered by id.
func (s *AdvertisementService) ListAdvertisements(ctx context.Context) ([]models.Advertisement, error) {
	return s.adRepo.List(ctx)
}

// ListActiveAdvertisements returns advertisements with IsActive set,
// served from cache when possible.
func (s *AdvertisementService) ListActiveAdvertisements(ctx context.Context) ([]models.Advertisement, error) {
	var ads []models.Advertisement
	if cache.GetJSON(ctx, s.rdb, activeAdsCacheKey, &ads) {
		return ads, nil
	}
	ads, err := s.adRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, s.rdb, activeAdsCacheKey, ads, activeAdsCacheTTL)
	return ads, nil
}

// GetAdvertisement returns a single advertisement by id.
func (s *AdvertisementService) GetAdvertisement(ctx context.Context, id uint) (*models.Advertisement, error) {
	return s.adRepo.GetByID(ctx, id)
}

// CreateAdvertisement persists a new advertisement.
func (s *AdvertisementService) CreateAdvertisement(ctx context.Context, ad *models.Advertisement) (*models.Advertisement, error) {
	if err := validateAdvertisement(ad); err != nil {
		return nil, err
	}
	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.rdb, activeAdsCacheKey)
	return ad, nil
}

// UpdateAdvertisement replaces an advertisement's fields by id.
func (s *AdvertisementService) UpdateAdvertisement(ctx context.Context, id uint, ad *models.Advertisement) (*models.Advertisement, error) {
	if err := validateAdvertisement(ad); err != nil {
		return nil, err
	}
	ad.ID = id
	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, s.rdb, activeAdsCacheKey)
	return s.adRepo.GetByID(ctx, id)
}

// DeleteAdvertisement removes an advertisement by id.
func (s *AdvertisementService) DeleteAdvertisement(ctx context.Context, id uint) error {
	if err := s.adRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.Invalidate(ctx, s.rdb, activeAdsCacheKey)
	return nil
}

// Export renders all advertisements into a spreadsheet workbook.
func (s *AdvertisementService) Export(ctx context.Context) ([]byte, error) {
	span, ctx := observability.NewSpan(ctx, "export.advertisements")
	defer span.End()

	ads, err := s.adRepo.List(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	observability.SpreadsheetExports.WithLabelValues("advertisement").Inc()
	return export.Workbook(export.AdvertisementsSheet(ads))
}
