// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Package validation wraps go-playground/validator v10 behind a singleton and
// converts field errors into the API's VALIDATION_ERROR shape.
//
// Field names in messages are taken from the json tag, so a client sees the
// same name it sent:
//
//	type RecommendRequest struct {
//	    Song *string `json:"song" validate:"required,max=512"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Message == "song is required"
//	}
package validation
