// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Package services adapts long-running components to suture.Service.
//
//   - HTTPServerService: runs an *http.Server and shuts it down gracefully
//   - CacheJanitorService: periodically drops expired recommendation cache entries
package services
