// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Package middleware provides HTTP middleware shared by the API router.
//
//   - RequestID: assigns or propagates X-Request-ID and seeds the logging context
//   - PrometheusMetrics: records request count, latency and in-flight requests
//   - AccessLog: writes one structured log line per request
//
// All middleware follow the chi signature func(http.Handler) http.Handler.
package middleware
