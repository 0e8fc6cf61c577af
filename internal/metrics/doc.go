// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

/*
Package metrics provides Prometheus instrumentation for vibesearch.

Collectors are registered on the default registry through promauto and
exposed at /metrics by the API router.

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Corpus (set once at startup):
  - corpus_songs_loaded
  - corpus_embedding_dimension
  - corpus_load_duration_seconds
  - similarity_matrix_build_duration_seconds

Recommendations:
  - recommend_requests_total{outcome}   outcome is "match" or "no_match"
  - recommend_duration_seconds
  - recommend_cache_hits_total
  - recommend_cache_misses_total
  - recommend_cache_entries
*/
package metrics
