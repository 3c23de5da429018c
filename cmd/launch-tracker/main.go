package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/MrAnandSharan/spacex-launch-tracker/internal/api"
	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/cache"
	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/client"
	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/config"
	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/launch"
	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "launch-tracker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	})

	store, closeStore, err := newStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	spacexClient, err := client.New(client.Config{
		BaseURL: cfg.SpaceX.BaseURL,
		Store:   store,
		TTL:     cfg.Cache.TTL(),
		Timeout: cfg.SpaceX.Timeout,
	})
	if err != nil {
		return fmt.Errorf("create SpaceX client: %w", err)
	}

	service := launch.NewService(spacexClient)
	handler := api.NewHandler(service, cfg.API)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info().Msg("Server stopped")
	return nil
}

// newStore connects the configured cache backend. An empty Redis address
// selects the in-memory store.
func newStore(cfg *config.Config, logger zerolog.Logger) (cache.Store, func(), error) {
	if cfg.Redis.Addr == "" {
		logger.Info().Msg("No Redis address configured, using in-memory cache")
		return cache.NewMemoryStore(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("connect to Redis at %s: %w", cfg.Redis.Addr, err)
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("Connected to Redis")

	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn().Err(err).Msg("Closing Redis connection failed")
		}
	}
	return cache.NewRedisStore(redisClient), closeFn, nil
}
