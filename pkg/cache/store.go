package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/logging"
)

// Store is the fail-open cache capability. A read has exactly two outcomes:
// hit-with-value or miss. Implementations must collapse every backend
// failure into a miss (Get) or a false return (writes) and must never serve
// an expired entry.
type Store interface {
	// Get returns the stored value if present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key until ttl elapses, overwriting any
	// existing entry. Returns false if the backend write failed.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool

	// Delete removes an entry. Administrative, not used in the read path.
	Delete(ctx context.Context, key string) bool

	// Flush removes all entries. Administrative.
	Flush(ctx context.Context) bool
}

// RedisStore is a Store backed by Redis. TTL enforcement is delegated to
// the server via SET ... EX, so expired keys are simply absent on read.
type RedisStore struct {
	redis  *redis.Client
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(redisClient *redis.Client) *RedisStore {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &RedisStore{
		redis:  redisClient,
		logger: logging.NewLogger("cache"),
	}
}

// Get retrieves a value by key. Backend failures are logged and reported
// as a miss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			CacheErrors.WithLabelValues("get").Inc()
			s.logger.Warn().Err(err).Str("key", key).Msg("Redis get failed, treating as miss")
		}
		CacheMisses.Inc()
		return nil, false
	}

	CacheHits.WithLabelValues("redis").Inc()
	CacheSize.WithLabelValues("redis").Add(float64(len(data)))
	return data, true
}

// Set stores a value with the given TTL. Non-positive TTLs are not stored.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}

	if err := s.redis.Set(ctx, key, value, ttl).Err(); err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		s.logger.Warn().Err(err).Str("key", key).Dur("ttl", ttl).Msg("Redis set failed, continuing without cache")
		return false
	}

	CacheSize.WithLabelValues("redis").Add(float64(len(value)))
	return true
}

// Delete removes an entry.
func (s *RedisStore) Delete(ctx context.Context, key string) bool {
	if err := s.redis.Del(ctx, key).Err(); err != nil {
		CacheErrors.WithLabelValues("delete").Inc()
		s.logger.Warn().Err(err).Str("key", key).Msg("Redis delete failed")
		return false
	}
	return true
}

// Flush removes all entries from the current database.
func (s *RedisStore) Flush(ctx context.Context) bool {
	if err := s.redis.FlushDB(ctx).Err(); err != nil {
		CacheErrors.WithLabelValues("flush").Inc()
		s.logger.Warn().Err(err).Msg("Redis flush failed")
		return false
	}
	s.logger.Info().Msg("Cache flushed")
	return true
}
