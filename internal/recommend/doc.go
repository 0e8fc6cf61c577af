// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Package recommend resolves a free-text song query against the corpus and
// ranks every other song by cosine similarity.
//
// # Matching
//
// A query is resolved in two steps, both case-insensitive (strings.ToLower):
//
//  1. Exact lookup in the name index. When several songs fold to the same
//     name, the index keeps the last one.
//  2. Otherwise, the first song in corpus order whose name contains the query.
//
// The empty query is a substring of every name and resolves to the first song.
//
// # Ranking
//
// All N songs are stable-sorted by similarity to the matched song, highest
// first, ties in corpus order. The first topK+1 are taken, the matched song is
// dropped, and the list is cut to topK. topK <= 0 yields an empty list; topK
// larger than N-1 yields every other song.
//
// # Results
//
// Recommend returns a Result, which is either a Match or a NoMatch. Not finding
// a song is an ordinary outcome, not an error.
//
//	switch res := rec.Recommend(ctx, "echoes", 5).(type) {
//	case recommend.Match:
//	    fmt.Println(res.Name, res.Recommendations)
//	case recommend.NoMatch:
//	    fmt.Println(res.Message())
//	}
//
// # Thread Safety
//
// Recommender holds only immutable state and is safe for concurrent use without
// locking. CachedRecommender adds a mutex-guarded LRU in front of it.
package recommend
