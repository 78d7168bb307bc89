package storage

import (
	"context"
	"crypto/md5"
	"fmt"

	"github.com/phambaophuc/watermark-removal/internal/models"
	"github.com/redis/go-redis/v9"
)

func (s *CacheService) GetFromCache(ctx context.Context, cacheKey string) ([]byte, error) {
	if s.redisClient == nil {
		return nil, nil
	}

	data, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return data, nil
}

func (s *CacheService) SetCache(ctx context.Context, cacheKey string, data []byte) error {
	if s.redisClient == nil {
		return nil
	}
	return s.redisClient.Set(ctx, cacheKey, data, s.cacheDuration).Err()
}

// GenerateCacheKey derives a stable key from everything that changes
// the cleaned output: source URL, watermark region and device.
func (s *CacheService) GenerateCacheKey(imageURL string, region models.WatermarkRegion, device string) string {
	hash := md5.New()
	hash.Write([]byte(imageURL))
	hash.Write([]byte(region.Key()))
	hash.Write([]byte(device))
	return fmt.Sprintf("wm_cache:%x", hash.Sum(nil))
}
