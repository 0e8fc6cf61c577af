// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// @title Vibesearch API
// @version 1.0
// @description Song recommendations by cosine similarity over precomputed audio embeddings.
// @description
// @description ## Matching
// @description
// @description The `song` value is matched case-insensitively against corpus names. An exact
// @description match wins; otherwise the first name containing the value is used. A value
// @description that matches nothing returns `matched: null` with an `error` message and status 200.
// @description
// @description ## Error Responses
// @description
// @description Malformed requests use this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {"code": "VALIDATION_ERROR", "message": "song is required"},
// @description   "metadata": {"timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/vibesearch
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
package main
