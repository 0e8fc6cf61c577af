// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package api

import "time"

// APIResponse is the envelope used for error responses.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response bookkeeping.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError is a machine-readable error.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes for API responses
const (
	ErrCodeBadRequest           = "BAD_REQUEST"
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	ErrCodeUnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"
	ErrCodeRequestTooLarge      = "REQUEST_TOO_LARGE"
	ErrCodeTooManyRequests      = "TOO_MANY_REQUESTS"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	SongsLoaded int    `json:"songs_loaded" example:"1200"`
}

// LiveResponse is returned by GET /health/live.
type LiveResponse struct {
	Status string `json:"status" example:"ok"`
}

// SongsResponse is returned by GET /songs.
type SongsResponse struct {
	Songs []string `json:"songs"`
}

// RecommendRequest is the POST /recommend body.
// Song is a pointer so that a missing field fails validation while "" is accepted.
type RecommendRequest struct {
	Song *string `json:"song" validate:"required"`
	TopK *int    `json:"top_k,omitempty"`
}

// Recommendation is one ranked song.
type Recommendation struct {
	Song       string  `json:"song" example:"Square a Saw - Echoes"`
	Similarity float64 `json:"similarity" example:"0.93"`
}

// RecommendResponse is returned by /recommend. Exactly one of Matched and
// Error is non-null.
type RecommendResponse struct {
	Matched         *string          `json:"matched"`
	Recommendations []Recommendation `json:"recommendations"`
	Error           *string          `json:"error"`
}
