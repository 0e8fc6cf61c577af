// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ExpiringCache is implemented by caches with TTL-based expiry.
type ExpiringCache interface {
	CleanupExpired() int
}

// CacheJanitorService sweeps expired cache entries on a fixed interval so that
// memory is released even for keys that are never requested again.
type CacheJanitorService struct {
	cache    ExpiringCache
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor. Non-positive intervals become one minute.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCacheJanitorService(cache ExpiringCache, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		cache:    cache,
		interval: interval,
		logger:   logger.With().Str("component", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.cache.CleanupExpired(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("Expired recommendation cache entries")
			}
		}
	}
}

// String identifies the service in supervisor logs.
func (s *CacheJanitorService) String() string {
	return s.name
}
