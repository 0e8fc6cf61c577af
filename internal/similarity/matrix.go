// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package similarity

import (
	"math"
	"time"

	"github.com/tomtom215/vibesearch/internal/metrics"
)

// Matrix is an immutable N x N cosine similarity matrix stored row-major.
type Matrix struct {
	n      int
	values []float64
}

// Build computes all pairwise cosine similarities of vectors in O(N^2 * D).
// Vectors are expected to share one dimension; pairs of different length score 0.
func Build(vectors [][]float32) *Matrix {
	start := time.Now()

	n := len(vectors)
	m := &Matrix{n: n, values: make([]float64, n*n)}

	norms := make([]float64, n)
	for i, v := range vectors {
		var sum float64
		for _, x := range v {
			sum += float64(x) * float64(x)
		}
		norms[i] = math.Sqrt(sum)
	}

	for i := 0; i < n; i++ {
		if norms[i] > 0 {
			m.values[i*n+i] = 1
		}
		for j := i + 1; j < n; j++ {
			s := pairSimilarity(vectors[i], vectors[j], norms[i], norms[j])
			m.values[i*n+j] = s
			m.values[j*n+i] = s
		}
	}

	metrics.RecordSimilarityBuild(time.Since(start))
	return m
}

func pairSimilarity(a, b []float32, normA, normB float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for k := range a {
		dot += float64(a[k]) * float64(b[k])
	}
	return cosineFromParts(dot, normA, normB)
}

// Len returns N.
func (m *Matrix) Len() int {
	return m.n
}

// At returns the similarity between items i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.values[i*m.n+j]
}
