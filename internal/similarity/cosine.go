// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package similarity

import "math"

// Cosine returns dot(a, b) / (|a| * |b|), clamped to [-1, 1].
// It returns 0 when the lengths differ, either slice is empty, either norm is zero,
// or the inputs are not finite.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	return cosineFromParts(dot, math.Sqrt(normA), math.Sqrt(normB))
}

func cosineFromParts(dot, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	v := dot / (normA * normB)
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v)
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
