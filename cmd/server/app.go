// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/vibesearch/internal/api"
	"github.com/tomtom215/vibesearch/internal/config"
	"github.com/tomtom215/vibesearch/internal/corpus"
	"github.com/tomtom215/vibesearch/internal/recommend"
)

// application holds the state built before the supervisor tree starts.
type application struct {
	service api.Service

	// cache is nil when the result cache is disabled.
	cache *recommend.CachedRecommender
}

// buildApplication loads the corpus and builds the recommender. Any error
// returned here means the process must not serve traffic.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func buildApplication(cfg *config.Config, logger zerolog.Logger) (*application, error) {
	format, err := corpus.ParseFormat(cfg.Corpus.Format)
	if err != nil {
		return nil, err
	}

	c, err := corpus.Load(cfg.Corpus.Path, format)
	if err != nil {
		return nil, err
	}

	stats := c.Stats()
	logger.Info().
		Str("path", cfg.Corpus.Path).
		Int("songs", stats.Songs).
		Int("dim", stats.Dim).
		Msg("Corpus loaded")
	if len(stats.DuplicateNames) > 0 {
		logger.Warn().
			Int("duplicates", len(stats.DuplicateNames)).
			Msg("Corpus has duplicate names; exact lookups resolve to the last occurrence")
	}
	if len(stats.ZeroVectors) > 0 {
		logger.Warn().
			Ints("zero_vectors", stats.ZeroVectors).
			Msg("Corpus has zero-norm embeddings; their similarity to every song is 0")
	}

	rec, err := recommend.FromCorpus(c, logger)
	if err != nil {
		return nil, fmt.Errorf("build recommender: %w", err)
	}

	app := &application{service: rec}
	if cfg.Recommend.CacheEnabled {
		app.cache = recommend.NewCached(rec, cfg.Recommend.CacheSize, cfg.Recommend.CacheTTL)
		app.service = app.cache
		logger.Info().
			Int("size", cfg.Recommend.CacheSize).
			Dur("ttl", cfg.Recommend.CacheTTL).
			Msg("Recommendation cache enabled")
	}

	return app, nil
}

// newHTTPServer builds the HTTP server for the loaded service.
func newHTTPServer(cfg *config.Config, svc api.Service) *http.Server {
	handler := api.NewHandler(svc, cfg.Recommend.DefaultTopK)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security))
	router := api.NewRouter(handler, mw, api.RouterOptions{
		MetricsEnabled: cfg.Metrics.Enabled,
		SwaggerEnabled: cfg.Server.SwaggerEnabled,
	})

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}
