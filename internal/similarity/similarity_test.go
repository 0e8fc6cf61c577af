// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package similarity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestCosine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"scaled", []float32{1, 2, 3}, []float32{2, 4, 6}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 2}, []float32{-1, -2}, -1},
		{"forty five degrees", []float32{1, 0}, []float32{1, 1}, 1 / math.Sqrt2},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
		{"both zero", []float32{0, 0}, []float32{0, 0}, 0},
		{"length mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0},
		{"empty", []float32{}, []float32{}, 0},
		{"NaN component", []float32{float32(math.NaN()), 1}, []float32{1, 0}, 0},
		{"infinite component", []float32{float32(math.Inf(1)), 0}, []float32{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), epsilon)
		})
	}
}

func TestBuild_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	vectors := make([][]float32, 40)
	for i := range vectors {
		v := make([]float32, 16)
		for k := range v {
			v[k] = float32(rng.NormFloat64())
		}
		vectors[i] = v
	}

	m := Build(vectors)
	require.Equal(t, len(vectors), m.Len())

	for i := 0; i < m.Len(); i++ {
		assert.Equal(t, 1.0, m.At(i, i), "diagonal at %d", i)
		for j := 0; j < m.Len(); j++ {
			v := m.At(i, j)
			assert.Equal(t, v, m.At(j, i), "symmetry at (%d,%d)", i, j)
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
			assert.InDelta(t, Cosine(vectors[i], vectors[j]), v, epsilon)
		}
	}
}

func TestBuild_ZeroVector(t *testing.T) {
	t.Parallel()

	m := Build([][]float32{{1, 0}, {0, 0}, {0, 2}})

	assert.Equal(t, 0.0, m.At(1, 1), "zero vector has no self-similarity")
	assert.Equal(t, 0.0, m.At(0, 1))
	assert.Equal(t, 0.0, m.At(1, 2))
	assert.InDelta(t, 1.0, m.At(0, 0), epsilon)
	assert.InDelta(t, 0.0, m.At(0, 2), epsilon)
}

func TestBuild_IdenticalVectors(t *testing.T) {
	t.Parallel()

	m := Build([][]float32{{0.3, 0.4}, {0.3, 0.4}, {0.3, 0.4}})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, 1.0, m.At(i, j), epsilon)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	m := Build(nil)
	assert.Equal(t, 0, m.Len())
}
