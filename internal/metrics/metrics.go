// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for recommend_requests_total.
const (
	OutcomeMatch   = "match"
	OutcomeNoMatch = "no_match"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Corpus Metrics
	CorpusSongsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_songs_loaded",
			Help: "Number of songs in the loaded corpus",
		},
	)

	CorpusEmbeddingDimension = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_embedding_dimension",
			Help: "Dimension of the loaded embedding vectors",
		},
	)

	CorpusLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_load_duration_seconds",
			Help: "Time taken to read and validate the corpus artifact",
		},
	)

	SimilarityBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_matrix_build_duration_seconds",
			Help: "Time taken to build the pairwise similarity matrix",
		},
	)

	// Recommendation Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation lookups by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent resolving and ranking a recommendation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	RecommendCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_cache_entries",
			Help: "Current number of cached recommendation results",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCorpusLoad records the size and load time of the corpus
func RecordCorpusLoad(songs, dim int, duration time.Duration) {
	CorpusSongsLoaded.Set(float64(songs))
	CorpusEmbeddingDimension.Set(float64(dim))
	CorpusLoadDuration.Set(duration.Seconds())
}

// RecordSimilarityBuild records how long the similarity matrix took to build
func RecordSimilarityBuild(duration time.Duration) {
	SimilarityBuildDuration.Set(duration.Seconds())
}

// RecordRecommendation records one recommendation lookup
func RecordRecommendation(matched bool, duration time.Duration) {
	outcome := OutcomeNoMatch
	if matched {
		outcome = OutcomeMatch
	}
	RecommendRequestsTotal.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordRecommendCache records a cache lookup and the current entry count
func RecordRecommendCache(hit bool, entries int) {
	if hit {
		RecommendCacheHits.Inc()
	} else {
		RecommendCacheMisses.Inc()
	}
	RecommendCacheEntries.Set(float64(entries))
}
