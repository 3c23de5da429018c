// Package client provides the SpaceX API fetch client with fail-open
// caching and error classification.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/cache"
	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/launch"
	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/logging"
)

// Prometheus metrics for upstream API operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacex_requests_total",
		Help: "Total upstream requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "spacex_request_duration_seconds",
		Help:    "Upstream request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	requestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacex_request_errors_total",
		Help: "Total upstream errors by class",
	}, []string{"class"})
)

// Known upstream collection endpoints.
const (
	EndpointLaunches   = "launches"
	EndpointRockets    = "rockets"
	EndpointLaunchpads = "launchpads"
)

// Config holds the client configuration.
type Config struct {
	// BaseURL is the upstream API root, e.g. https://api.spacexdata.com/v4
	BaseURL string

	// Store is the fail-open response cache.
	Store cache.Store

	// TTL is how long successful responses stay cached.
	TTL time.Duration

	// Timeout bounds a single upstream round-trip.
	Timeout time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(store cache.Store, baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		Store:   store,
		TTL:     60 * time.Second,
		Timeout: 30 * time.Second,
	}
}

// Client fetches collections from the SpaceX API, cache-first. Remote
// calls are single-attempt: GETs are idempotent and retry policy belongs
// to the caller.
type Client struct {
	httpClient *http.Client
	store      cache.Store
	config     Config
	logger     zerolog.Logger
}

// New creates a new SpaceX API client.
func New(cfg Config) (*Client, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("cache store is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 60 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		store:  cfg.Store,
		config: cfg,
		logger: logging.NewLogger("spacex-client"),
	}, nil
}

// Fetch returns the raw body for an endpoint, preferring the cache. On a
// miss it issues one GET, caches a 2xx body with the configured TTL once it
// validates as JSON, and returns it. Cache failures never fail the call;
// remote failures surface as *APIError.
func (c *Client) Fetch(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	key := cache.Key(endpoint, query)

	if data, ok := c.store.Get(ctx, key); ok {
		c.logger.Debug().
			Str("endpoint", endpoint).
			Str("key", key).
			Bool("cache_hit", true).
			Msg("Returning cached response")
		return data, nil
	}

	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	reqURL := strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestErrors.WithLabelValues(string(ErrorClassNetwork)).Inc()
		requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Upstream request failed")
		return nil, &APIError{
			Endpoint: endpoint,
			Class:    ErrorClassNetwork,
			Message:  "request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		class := classifyStatus(resp.StatusCode)
		requestErrors.WithLabelValues(string(class)).Inc()
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			Str("error_class", string(class)).
			Msg("Upstream request error")
		return nil, &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Class:      class,
			Message:    resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestErrors.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Class:      ErrorClassNetwork,
			Message:    "read response body",
			Err:        err,
		}
	}

	// A 200 with a body that is not JSON is a remote failure and must
	// not be cached, or every call within the TTL would replay it.
	if !json.Valid(body) {
		requestErrors.WithLabelValues(string(ErrorClassDecode)).Inc()
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			Msg("Upstream returned malformed JSON")
		return nil, &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Class:      ErrorClassDecode,
			Message:    "malformed response body",
		}
	}

	// Failed writes are already logged by the store; the response is
	// still good.
	c.store.Set(ctx, key, body, c.config.TTL)

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("key", key).
		Bool("cache_hit", false).
		Dur("duration", time.Since(startTime)).
		Dur("ttl", c.config.TTL).
		Msg("Fetched from upstream and cached")

	return body, nil
}

// decode unmarshals an upstream body, mapping failures to ErrorClassDecode.
func decode[T any](endpoint string, data []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		requestErrors.WithLabelValues(string(ErrorClassDecode)).Inc()
		return nil, &APIError{
			Endpoint: endpoint,
			Class:    ErrorClassDecode,
			Message:  "malformed response body",
			Err:      err,
		}
	}
	return out, nil
}

// Launches fetches the launch collection.
func (c *Client) Launches(ctx context.Context) ([]launch.Launch, error) {
	data, err := c.Fetch(ctx, EndpointLaunches, nil)
	if err != nil {
		return nil, err
	}
	return decode[launch.Launch](EndpointLaunches, data)
}

// Rockets fetches the rocket collection.
func (c *Client) Rockets(ctx context.Context) ([]launch.Rocket, error) {
	data, err := c.Fetch(ctx, EndpointRockets, nil)
	if err != nil {
		return nil, err
	}
	return decode[launch.Rocket](EndpointRockets, data)
}

// Launchpads fetches the launchpad collection.
func (c *Client) Launchpads(ctx context.Context) ([]launch.Launchpad, error) {
	data, err := c.Fetch(ctx, EndpointLaunchpads, nil)
	if err != nil {
		return nil, err
	}
	return decode[launch.Launchpad](EndpointLaunchpads, data)
}
