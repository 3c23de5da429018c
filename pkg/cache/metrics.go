package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits by backend (redis, memory)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spacex_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"backend"},
	)

	// CacheMisses tracks cache misses, including misses caused by absorbed
	// backend failures
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spacex_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// CacheSize tracks bytes moved through the cache by backend
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "spacex_cache_size_bytes",
			Help: "Bytes read from or written to the cache",
		},
		[]string{"backend"},
	)

	// CacheErrors tracks absorbed backend errors by operation
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spacex_cache_errors_total",
			Help: "Total number of absorbed cache backend errors",
		},
		[]string{"operation"}, // "get", "set", "delete", "flush"
	)
)
