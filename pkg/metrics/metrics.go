// Package metrics provides the centralized Prometheus metrics registry for
// the launch tracker. All metrics are defined in their respective packages
// (client, cache) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the launch tracker.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - spacex_cache_hits_total{backend} (Counter): Cache hits by backend (redis, memory)
//   - spacex_cache_misses_total (Counter): Cache misses
//   - spacex_cache_size_bytes{backend} (Gauge): Current cache size in bytes
//   - spacex_cache_errors_total{operation} (Counter): Cache backend operation errors
//
// Request Metrics (pkg/client):
//   - spacex_requests_total{endpoint, status} (Counter): Upstream requests by endpoint and HTTP status
//   - spacex_request_duration_seconds{endpoint} (Histogram): Upstream request duration by endpoint
//   - spacex_request_errors_total{class} (Counter): Upstream errors by class (client, server, network, decode)
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(spacex_cache_hits_total[5m])) /
//   (sum(rate(spacex_cache_hits_total[5m])) + sum(rate(spacex_cache_misses_total[5m])))
//
//   # Upstream Error Rate
//   rate(spacex_request_errors_total[5m])
//
//   # P95 Upstream Latency
//   histogram_quantile(0.95, rate(spacex_request_duration_seconds_bucket[5m]))
