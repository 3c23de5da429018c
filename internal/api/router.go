// Package api provides the HTTP surface of the launch tracker: the
// paginated launch listing, exports, and statistics endpoints.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/config"
	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/launch"
	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/logging"
)

// LaunchService is the aggregation surface the handlers depend on.
type LaunchService interface {
	GetLaunches(ctx context.Context, f launch.Filter) ([]launch.View, error)
	RocketSuccessRate(ctx context.Context) ([]launch.RocketStats, error)
	LaunchSiteRate(ctx context.Context) ([]launch.SiteStats, error)
	LaunchFrequency(ctx context.Context) (launch.FrequencyStats, error)
}

// Handler holds the HTTP handlers and their dependencies.
type Handler struct {
	service LaunchService
	cfg     config.APIConfig
	logger  zerolog.Logger
}

// NewHandler creates the handler set over a launch service.
func NewHandler(service LaunchService, cfg config.APIConfig) *Handler {
	if service == nil {
		panic("service cannot be nil")
	}
	return &Handler{
		service: service,
		cfg:     cfg,
		logger:  logging.NewLogger("api"),
	}
}

// NewRouter builds the chi router with the full route tree and the global
// middleware stack.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(requestLogging(h.logger))
	r.Use(chimiddleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/launch", h.GetLaunches)
		r.Get("/launch/export", h.ExportLaunches)

		r.Route("/statistics", func(r chi.Router) {
			r.Get("/success-rate", h.RocketSuccessRate)
			r.Get("/launch-site", h.LaunchSiteRate)
			r.Get("/frequency", h.LaunchFrequency)
		})
	})

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
