package service

import (
	"context"
	"testing"

	"socialhub/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestAdvertisementService_ListActive_CachesResult(t *testing.T) {
	repoCalls := 0
	ads := noopAdRepo()
	ads.listActiveFn = func(context.Context) ([]models.Advertisement, error) {
		repoCalls++
		return []models.Advertisement{{ID: 1, Title: "Spring Sale", IsActive: true}}, nil
	}
	svc := NewAdvertisementService(ads, testRedis(t))

	first, err := svc.ListActiveAdvertisements(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.ListActiveAdvertisements(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Spring Sale", second[0].Title)
	assert.Equal(t, 1, repoCalls)
}

func TestAdvertisementService_WritesInvalidateActiveCache(t *testing.T) {
	repoCalls := 0
	ads := noopAdRepo()
	ads.listActiveFn = func(context.Context) ([]models.Advertisement, error) {
		repoCalls++
		return []models.Advertisement{{ID: 1, Title: "Spring Sale", IsActive: true}}, nil
	}
	svc := NewAdvertisementService(ads, testRedis(t))

	_, err := svc.ListActiveAdvertisements(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, repoCalls)

	_, err = svc.CreateAdvertisement(context.Background(), &models.Advertisement{
		Title:          "Summer Sale",
		DestinationURL: "https://example.com/summer",
	})
	require.NoError(t, err)

	_, err = svc.ListActiveAdvertisements(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repoCalls)
}

func TestAdvertisementService_ListActive_NilRedisHitsRepo(t *testing.T) {
	t.Parallel()

	repoCalls := 0
	ads := noopAdRepo()
	ads.listActiveFn = func(context.Context) ([]models.Advertisement, error) {
		repoCalls++
		return nil, nil
	}
	svc := NewAdvertisementService(ads, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.ListActiveAdvertisements(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 2, repoCalls)
}

func TestAdvertisementService_CreateAdvertisement_Validation(t *testing.T) {
	t.Parallel()

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		svc := NewAdvertisementService(noopAdRepo(), nil)
		_, err := svc.CreateAdvertisement(context.Background(), &models.Advertisement{
			DestinationURL: "https://example.com",
		})
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("missing destination url", func(t *testing.T) {
		t.Parallel()
		svc := NewAdvertisementService(noopAdRepo(), nil)
		_, err := svc.CreateAdvertisement(context.Background(), &models.Advertisement{
			Title: "Spring Sale",
		})
		assertAppErrorCode(t, err, "VALIDATION_ERROR")
	})
}
