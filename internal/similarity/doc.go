// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Package similarity builds the dense all-pairs cosine similarity matrix for a corpus.
//
// The matrix is computed once, in float64, and never changes afterwards:
//
//   - M[i][j] == M[j][i] exactly (the upper triangle is mirrored)
//   - M[i][i] == 1 for every nonzero vector
//   - every entry lies in [-1, 1]
//
// A vector with zero norm has no direction. Its similarity to every vector,
// itself included, is defined as 0.
package similarity
