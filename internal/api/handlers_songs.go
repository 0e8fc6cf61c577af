// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package api

import "net/http"

// Songs lists every song name in corpus order, duplicates included.
//
// @Summary List songs
// @Description Returns all song names in stored order
// @Tags Songs
// @Produce json
// @Success 200 {object} SongsResponse
// @Router /songs [get]
func (h *Handler) Songs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SongsResponse{Songs: h.svc.Songs()})
}
