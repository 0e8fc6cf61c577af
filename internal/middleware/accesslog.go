// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/vibesearch/internal/logging"
)

// SlowRequestThreshold promotes access log lines to warn level.
const SlowRequestThreshold = 500 * time.Millisecond

// AccessLog writes one log line per request. It must run after RequestID so
// the line carries request_id.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		elapsed := time.Since(start)
		logger := logging.Ctx(r.Context())
		event := logger.Debug()
		if elapsed >= SlowRequestThreshold {
			event = logger.Warn()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Int("bytes", wrapper.bytes).
			Dur("duration", elapsed).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP request")
	})
}
