// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package api

import "net/http"

// Health reports service status and the number of songs loaded.
//
// @Summary Service health
// @Description Returns status ok and the number of songs in the loaded corpus
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		SongsLoaded: h.svc.Len(),
	})
}

// HealthLive is a liveness probe that does not touch the corpus.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} LiveResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LiveResponse{Status: "ok"})
}
