// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/vibesearch/internal/logging"
)

var (
	validCorpusFormats = map[string]bool{"auto": true, "json": true, "sqlite": true}
	validLogFormats    = map[string]bool{"json": true, "console": true}
	validEnvironments  = map[string]bool{"development": true, "staging": true, "production": true}
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

func (c *Config) validateCorpus() error {
	if strings.TrimSpace(c.Corpus.Path) == "" {
		return fmt.Errorf("CORPUS_PATH is required")
	}
	if !validCorpusFormats[c.Corpus.Format] {
		return fmt.Errorf("CORPUS_FORMAT must be one of: auto, json, sqlite")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.DefaultTopK < 1 {
		return fmt.Errorf("DEFAULT_TOP_K must be at least 1")
	}
	if !c.Recommend.CacheEnabled {
		return nil
	}
	if c.Recommend.CacheSize < 1 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must be at least 1 when the cache is enabled")
	}
	if c.Recommend.CacheTTL < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.IsProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' in production")
			}
		}
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
