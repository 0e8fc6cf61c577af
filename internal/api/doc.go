// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

/*
Package api exposes the recommendation service over HTTP using the chi router.

Endpoints:

	GET  /health         {"status":"ok","songs_loaded":N}
	GET  /health/live    {"status":"ok"}
	GET  /songs          {"songs":[...]} in corpus order
	POST /recommend      body {"song":"...","top_k":5}
	GET  /recommend      ?song=...&top_k=5
	GET  /metrics        Prometheus exposition (when enabled)
	GET  /swagger/*      OpenAPI UI (when enabled)

Recommendation responses always carry matched, recommendations and error.
A query that matches no song is a normal 200 response with matched null and
error set. Malformed requests use the error envelope:

	{"status":"error","data":null,"metadata":{"timestamp":"..."},
	 "error":{"code":"VALIDATION_ERROR","message":"song is required"}}

The handlers depend on the Service interface, implemented by
recommend.Recommender and recommend.CachedRecommender.
*/
package api
