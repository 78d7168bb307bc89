package storage

import "context"

// HealthCheck reports the Redis connection state.
func (s *CacheService) HealthCheck(ctx context.Context) string {
	if s.redisClient == nil {
		return "not configured"
	}

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return "unhealthy: " + err.Error()
	}
	return "healthy"
}
