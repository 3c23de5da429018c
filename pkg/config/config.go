// Package config loads launch tracker configuration from defaults, an
// optional YAML file, and environment variables using koanf.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/launch"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/launch-tracker/config.yaml",
	"/etc/launch-tracker/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix is stripped from environment variables before mapping them to
// config paths. Nesting uses a double underscore:
// TRACKER_SPACEX__BASE_URL -> spacex.base_url
const envPrefix = "TRACKER_"

// Config is the root configuration for the launch tracker.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	SpaceX  SpaceXConfig  `koanf:"spacex"`
	Redis   RedisConfig   `koanf:"redis"`
	Cache   CacheConfig   `koanf:"cache"`
	Logging LoggingConfig `koanf:"logging"`
	API     APIConfig     `koanf:"api"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// SpaceXConfig configures the upstream SpaceX API client.
type SpaceXConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// RedisConfig configures the cache backend. An empty Addr selects the
// in-memory store instead of Redis.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// CacheConfig configures cache entry lifetime.
type CacheConfig struct {
	TTLSeconds int `koanf:"ttl_seconds"`
}

// TTL returns the cache TTL as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

// APIConfig configures request handling policies.
type APIConfig struct {
	DefaultPageSize int              `koanf:"default_page_size"`
	MaxPageSize     int              `koanf:"max_page_size"`
	MatchMode       launch.MatchMode `koanf:"match_mode"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8080,
			Timeout: 30 * time.Second,
		},
		SpaceX: SpaceXConfig{
			BaseURL: "https://api.spacexdata.com/v4",
			Timeout: 30 * time.Second,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		},
		Cache: CacheConfig{
			TTLSeconds: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: false,
		},
		API: APIConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
			MatchMode:       launch.MatchContains,
		},
	}
}

// Load builds the configuration from layered sources:
//  1. Defaults: built-in values
//  2. Config file: optional YAML file (if found)
//  3. Environment variables: highest priority
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the rest of the system cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.SpaceX.BaseURL == "" {
		return fmt.Errorf("spacex.base_url must not be empty")
	}
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache.ttl_seconds must be positive, got %d", c.Cache.TTLSeconds)
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be >= 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	switch c.API.MatchMode {
	case launch.MatchContains, launch.MatchExact:
	default:
		return fmt.Errorf("api.match_mode must be %q or %q, got %q",
			launch.MatchContains, launch.MatchExact, c.API.MatchMode)
	}
	return nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransform maps environment variable names to config paths.
//
// Examples:
//   - TRACKER_SERVER__PORT -> server.port
//   - TRACKER_SPACEX__BASE_URL -> spacex.base_url
//   - TRACKER_CACHE__TTL_SECONDS -> cache.ttl_seconds
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
