// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vibesearch/internal/logging"
	"github.com/tomtom215/vibesearch/internal/recommend"
)

// maxRequestBodyBytes bounds POST /recommend bodies.
const maxRequestBodyBytes = 64 << 10

// Recommend handles POST /recommend with a JSON body.
//
// @Summary Recommend similar songs
// @Description Resolves the song by case-insensitive exact match, then substring match, and returns the top_k most similar other songs. A song that matches nothing returns matched null and an error message with status 200.
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Song query and optional top_k (default 5)"
// @Success 200 {object} RecommendResponse
// @Failure 400 {object} APIResponse "Malformed body or missing song"
// @Failure 413 {object} APIResponse "Body too large"
// @Failure 415 {object} APIResponse "Content-Type is not application/json"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r.Header.Get("Content-Type")) {
		respondError(w, r, http.StatusUnsupportedMediaType,
			errorf(ErrCodeUnsupportedMediaType, "Content-Type must be application/json"), nil)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		if isBodyTooLarge(err) {
			respondError(w, r, http.StatusRequestEntityTooLarge,
				errorf(ErrCodeRequestTooLarge, "Request body exceeds %d bytes", maxRequestBodyBytes), err)
			return
		}
		respondError(w, r, http.StatusBadRequest, errorf(ErrCodeBadRequest, "Failed to read request body"), err)
		return
	}

	var req RecommendRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, errorf(ErrCodeBadRequest, "Invalid JSON request body"), err)
		return
	}

	h.serveRecommend(w, r, &req)
}

// RecommendQuery handles GET /recommend?song=...&top_k=....
//
// @Summary Recommend similar songs (query string)
// @Description Same as POST /recommend with parameters taken from the query string
// @Tags Recommend
// @Produce json
// @Param song query string true "Song name or substring"
// @Param top_k query int false "Number of recommendations (default 5)"
// @Success 200 {object} RecommendResponse
// @Failure 400 {object} APIResponse "Missing song or non-integer top_k"
// @Router /recommend [get]
func (h *Handler) RecommendQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var req RecommendRequest
	if query.Has("song") {
		song := query.Get("song")
		req.Song = &song
	}
	if raw := query.Get("top_k"); raw != "" {
		topK, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, r, http.StatusBadRequest,
				errorf(ErrCodeBadRequest, "top_k must be an integer"), err)
			return
		}
		req.TopK = &topK
	}

	h.serveRecommend(w, r, &req)
}

func (h *Handler) serveRecommend(w http.ResponseWriter, r *http.Request, req *RecommendRequest) {
	if apiErr := validateRequest(req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	topK := h.defaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}

	result := h.svc.Recommend(r.Context(), *req.Song, topK)
	resp, err := NewRecommendResponse(result)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError,
			errorf(ErrCodeInternalError, "Recommendation failed"), err)
		return
	}

	if resp.Matched != nil {
		logging.Ctx(r.Context()).Debug().
			Str("query", sanitizeLogValue(*req.Song)).
			Str("matched", sanitizeLogValue(*resp.Matched)).
			Int("top_k", topK).
			Int("returned", len(resp.Recommendations)).
			Msg("Recommendation served")
	}

	respondJSON(w, http.StatusOK, resp)
}

// NewRecommendResponse maps a recommend.Result onto the /recommend wire shape.
func NewRecommendResponse(result recommend.Result) (*RecommendResponse, error) {
	switch res := result.(type) {
	case recommend.Match:
		name := res.Name
		recs := make([]Recommendation, len(res.Recommendations))
		for i, s := range res.Recommendations {
			recs[i] = Recommendation{Song: s.Song, Similarity: s.Similarity}
		}
		return &RecommendResponse{Matched: &name, Recommendations: recs}, nil
	case recommend.NoMatch:
		msg := res.Message()
		return &RecommendResponse{Recommendations: []Recommendation{}, Error: &msg}, nil
	default:
		return nil, fmt.Errorf("unexpected recommendation result %T", result)
	}
}

// isJSONContentType accepts application/json with optional parameters.
// An absent header is treated as JSON.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

// isBodyTooLarge reports whether err came from http.MaxBytesReader.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
