// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package api

import (
	"context"

	"github.com/tomtom215/vibesearch/internal/recommend"
)

// Service is the read-only recommendation state served over HTTP.
type Service interface {
	Songs() []string
	Len() int
	Recommend(ctx context.Context, query string, topK int) recommend.Result
}

// Handler serves the HTTP endpoints.
type Handler struct {
	svc         Service
	defaultTopK int
}

// NewHandler creates a Handler. defaultTopK is used when a request omits top_k.
func NewHandler(svc Service, defaultTopK int) *Handler {
	return &Handler{svc: svc, defaultTopK: defaultTopK}
}
