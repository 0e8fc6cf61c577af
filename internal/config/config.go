// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Corpus    CorpusConfig    `koanf:"corpus"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
	SwaggerEnabled  bool          `koanf:"swagger_enabled"`
}

// CorpusConfig points at the embedding artifact loaded at startup.
type CorpusConfig struct {
	// Path is the artifact location on disk.
	Path string `koanf:"path"`

	// Format is auto, json or sqlite. auto picks by file extension.
	Format string `koanf:"format"`
}

// RecommendConfig holds recommendation defaults and the result cache.
type RecommendConfig struct {
	// DefaultTopK is used when a request does not specify top_k.
	DefaultTopK int `koanf:"default_top_k"`

	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheSize    int           `koanf:"cache_size"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds HTTP protection settings. There is no authentication.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller adds file:line to every entry.
	Caller bool `koanf:"caller"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, an optional config file and the environment.
// A .env file in the working directory is applied first when present; variables
// already set in the process environment win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadWithKoanf()
}
