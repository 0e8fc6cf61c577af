// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Package logging provides the zerolog-based structured logger used across vibesearch.
//
// A single global logger is configured at startup from the logging section of
// the application config. JSON output is the default; console output is
// available for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("songs", n).Msg("Corpus loaded")
//	logging.Error().Err(err).Msg("Recommendation failed")
//
//	// Request-scoped fields (request_id, correlation_id)
//	logging.Ctx(ctx).Debug().Str("query", q).Msg("Resolving song")
//
// # Suture Integration
//
// The supervisor tree logs through slog. SlogHandler bridges slog records
// onto the global zerolog logger so every component writes one format:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(). Prefer structured fields
// over Msgf.
package logging
