package storage

import (
	"context"
	"testing"

	"github.com/phambaophuc/watermark-removal/internal/config"
	"github.com/phambaophuc/watermark-removal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDisabledCache() *CacheService {
	return NewCacheService(&config.Config{})
}

func TestGenerateCacheKey(t *testing.T) {
	cache := newDisabledCache()
	region := models.WatermarkRegion{Width: 120, Height: 120}

	key := cache.GenerateCacheKey("https://example.com/a.jpg", region, "cpu")
	assert.Contains(t, key, "wm_cache:")

	// Deterministic for identical inputs.
	assert.Equal(t, key, cache.GenerateCacheKey("https://example.com/a.jpg", region, "cpu"))

	// Every input dimension changes the key.
	assert.NotEqual(t, key, cache.GenerateCacheKey("https://example.com/b.jpg", region, "cpu"))
	assert.NotEqual(t, key, cache.GenerateCacheKey("https://example.com/a.jpg", region, "cuda"))

	other := models.WatermarkRegion{Width: 120, Height: 120, OffsetY: 1}
	assert.NotEqual(t, key, cache.GenerateCacheKey("https://example.com/a.jpg", other, "cpu"))
}

func TestDisabledCacheIsAlwaysMiss(t *testing.T) {
	cache := newDisabledCache()
	ctx := context.Background()

	assert.False(t, cache.Enabled())

	data, err := cache.GetFromCache(ctx, "wm_cache:any")
	require.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, cache.SetCache(ctx, "wm_cache:any", []byte("png")))
	assert.Equal(t, "not configured", cache.HealthCheck(ctx))
}
