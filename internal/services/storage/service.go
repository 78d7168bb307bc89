package storage

import (
	"time"

	"github.com/phambaophuc/watermark-removal/internal/config"
	"github.com/redis/go-redis/v9"
)

// CacheService keeps cleaned image bytes in Redis so repeated requests
// for the same URL and region skip the model entirely. The cache is
// optional: with no REDIS_ADDR configured every lookup is a miss.
type CacheService struct {
	redisClient   *redis.Client
	cacheDuration time.Duration
}

func NewCacheService(cfg *config.Config) *CacheService {
	var client *redis.Client
	if cfg.Redis.Addr != "" {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	return &CacheService{
		redisClient:   client,
		cacheDuration: cfg.Redis.CacheDuration,
	}
}

func (s *CacheService) Enabled() bool {
	return s.redisClient != nil
}
