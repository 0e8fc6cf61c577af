// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vibesearch/internal/logging"
	"github.com/tomtom215/vibesearch/internal/validation"
)

// sanitizeLogValue escapes control characters so request data cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// encodeFailureBody is sent when a response cannot be encoded.
var encodeFailureBody = []byte(`{"status":"error","data":null,"metadata":{"timestamp":"1970-01-01T00:00:00Z"},` +
	`"error":{"code":"` + ErrCodeInternalError + `","message":"Failed to encode response"}}`)

// respondJSON writes v as a JSON body with the given status.
// A value that cannot be encoded becomes a 500 INTERNAL_ERROR envelope.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Err(err).Msg("Failed to marshal JSON response")
		status = http.StatusInternalServerError
		data, err = json.Marshal(&APIResponse{
			Status:   "error",
			Metadata: Metadata{Timestamp: time.Now().UTC()},
			Error:    errorf(ErrCodeInternalError, "Failed to encode response"),
		})
		if err != nil {
			data = encodeFailureBody
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes the error envelope. err, when set, is logged but never sent.
func respondError(w http.ResponseWriter, r *http.Request, status int, apiErr *APIError, err error) {
	requestID := logging.RequestIDFromContext(r.Context())

	if err != nil {
		logging.Ctx(r.Context()).Warn().
			Str("code", apiErr.Code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, &APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: requestID,
		},
		Error: apiErr,
	})
}

// errorf builds an APIError without details.
func errorf(code, format string, args ...interface{}) *APIError {
	return &APIError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// validateRequest runs struct validation and converts failures to an APIError.
func validateRequest(v interface{}) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}
