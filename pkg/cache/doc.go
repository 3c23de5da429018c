// Package cache provides the fail-open response cache for upstream SpaceX
// API payloads.
//
// The Store interface has exactly two read outcomes: hit-with-value and
// miss. Backend failures are never surfaced to callers; they are logged,
// counted in Prometheus metrics, and collapsed into a miss so the read path
// degrades to "always fetch live" under a cache outage. Expired entries are
// indistinguishable from absent entries.
//
// Two backends are provided:
//
//   - RedisStore: Redis-backed, TTL enforced by the server (SET ... EX)
//   - MemoryStore: process-local map with lazy expiration, used when no
//     Redis address is configured and in tests
//
// # Basic Usage
//
//	store := cache.NewRedisStore(redisClient)
//
//	key := cache.Key("launches", nil)
//	if data, ok := store.Get(ctx, key); ok {
//		// cache hit
//	}
//	store.Set(ctx, key, body, 60*time.Second)
//
// # Metrics
//
// The package exports Prometheus metrics:
//
//   - spacex_cache_hits_total{backend} - cache hits
//   - spacex_cache_misses_total - cache misses
//   - spacex_cache_size_bytes{backend} - bytes written/read
//   - spacex_cache_errors_total{operation} - absorbed backend errors
package cache
