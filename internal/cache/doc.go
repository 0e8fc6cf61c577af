// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Package cache provides a generic, thread-safe LRU cache with optional TTL.
//
// The recommendation service uses it to memoize results per (query, top_k).
// The underlying corpus never changes, so entries are never invalidated; the
// capacity and TTL only bound memory.
package cache
