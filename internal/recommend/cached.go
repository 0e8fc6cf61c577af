// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/vibesearch/internal/cache"
	"github.com/tomtom215/vibesearch/internal/metrics"
)

type cacheKey struct {
	query string
	topK  int
}

// CachedRecommender memoizes Recommender results per (query, topK).
// The corpus is immutable, so cached results never go stale.
type CachedRecommender struct {
	*Recommender
	cache *cache.LRU[cacheKey, Result]
}

// NewCached wraps r with an LRU of the given capacity and entry TTL.
func NewCached(r *Recommender, capacity int, ttl time.Duration) *CachedRecommender {
	return &CachedRecommender{
		Recommender: r,
		cache:       cache.NewLRU[cacheKey, Result](capacity, ttl),
	}
}

// Recommend returns a cached result when available and computes it otherwise.
func (c *CachedRecommender) Recommend(ctx context.Context, query string, topK int) Result {
	key := cacheKey{query: query, topK: topK}

	if res, ok := c.cache.Get(key); ok {
		metrics.RecordRecommendCache(true, c.cache.Len())
		return res
	}

	res := c.Recommender.Recommend(ctx, query, topK)
	c.cache.Add(key, res)
	metrics.RecordRecommendCache(false, c.cache.Len())

	return res
}

// CacheStats returns hit and miss counts and the current number of cached results.
func (c *CachedRecommender) CacheStats() (hits, misses int64, size int) {
	return c.cache.Stats()
}

// CleanupExpired drops expired results and returns how many were removed.
func (c *CachedRecommender) CleanupExpired() int {
	removed := c.cache.CleanupExpired()
	if removed > 0 {
		metrics.RecommendCacheEntries.Set(float64(c.cache.Len()))
	}
	return removed
}
