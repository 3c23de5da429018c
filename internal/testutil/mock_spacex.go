// Package testutil provides testing utilities for the launch tracker.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// Response defines the behavior for a mock SpaceX API endpoint.
type Response struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockSpaceX is a configurable mock SpaceX API server for testing.
type MockSpaceX struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	// Tracking
	requestCount int
	pathCounts   map[string]int
}

// NewMockSpaceX creates a new mock SpaceX API server.
func NewMockSpaceX() *MockSpaceX {
	mock := &MockSpaceX{
		handlers:   make(map[string]http.HandlerFunc),
		pathCounts: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount++
		mock.pathCounts[r.URL.Path]++
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.Unlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockSpaceX) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockSpaceX) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockSpaceX) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.pathCounts = make(map[string]int)
}

// SetHandler sets a custom handler for a specific path.
func (m *MockSpaceX) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockSpaceX) SetResponse(path string, resp Response) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetCollections configures the three collection endpoints in one call.
func (m *MockSpaceX) SetCollections(launches, rockets, launchpads string) {
	m.SetResponse("/launches", JSONResponse(launches))
	m.SetResponse("/rockets", JSONResponse(rockets))
	m.SetResponse("/launchpads", JSONResponse(launchpads))
}

// RequestCount returns the total number of requests made to the server.
func (m *MockSpaceX) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// PathCount returns the number of requests made to a specific path.
func (m *MockSpaceX) PathCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pathCounts[path]
}

// defaultHandler answers unconfigured paths with an empty collection.
func (m *MockSpaceX) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`[]`))
}

// JSONResponse creates a standard 200 OK JSON response.
func JSONResponse(body string) Response {
	return Response{
		StatusCode: http.StatusOK,
		Body:       body,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}

// ServerErrorResponse creates a 500 Internal Server Error response.
func ServerErrorResponse() Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error": "internal server error"}`,
	}
}

// NotFoundResponse creates a 404 Not Found response.
func NotFoundResponse() Response {
	return Response{
		StatusCode: http.StatusNotFound,
		Body:       `{"error": "not found"}`,
	}
}

// SampleLaunches is a small launches fixture in the upstream wire format.
const SampleLaunches = `[
  {"id": "l1", "name": "CRS-20", "date_utc": "2020-03-07T04:50:31.000Z", "success": true, "rocket": "r1", "launchpad": "p1"},
  {"id": "l2", "name": "Starlink-15", "date_utc": "2020-10-24T15:31:00.000Z", "success": false, "rocket": "r1", "launchpad": "p2"},
  {"id": "l3", "name": "Arabsat-6A", "date_utc": "2019-04-11T22:35:00.000Z", "success": true, "rocket": "r2", "launchpad": "p2"},
  {"id": "l4", "name": "TBD Mission", "date_utc": "2022-11-01T12:00:00.000Z", "success": null, "rocket": "r1", "launchpad": "p-unknown"}
]`

// SampleRockets is the matching rockets fixture.
const SampleRockets = `[
  {"id": "r1", "name": "Falcon 9"},
  {"id": "r2", "name": "Falcon Heavy"}
]`

// SampleLaunchpads is the matching launchpads fixture.
const SampleLaunchpads = `[
  {"id": "p1", "name": "CCSFS SLC 40"},
  {"id": "p2", "name": "KSC LC 39A"}
]`
