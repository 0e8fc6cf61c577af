// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package corpus

import (
	"fmt"
	"math"
	"strings"
)

// Corpus is an immutable, ordered set of song names with their embeddings.
type Corpus struct {
	names   []string
	vectors [][]float32
	dim     int
}

// New validates names and vectors and returns a Corpus that owns copies of both.
// It fails with a *LoadError when the counts differ, the corpus is empty,
// the vectors do not share a single dimension, or a value is NaN or infinite.
func New(names []string, vectors [][]float32) (*Corpus, error) {
	if len(names) != len(vectors) {
		return nil, &LoadError{Err: fmt.Errorf("%w: %d names, %d embeddings", ErrCountMismatch, len(names), len(vectors))}
	}
	if len(names) == 0 {
		return nil, &LoadError{Err: ErrEmptyCorpus}
	}

	dim := len(vectors[0])
	if dim == 0 {
		return nil, &LoadError{Err: fmt.Errorf("%w: row 0 is empty", ErrRaggedEmbeddings)}
	}

	c := &Corpus{
		names:   make([]string, len(names)),
		vectors: make([][]float32, len(vectors)),
		dim:     dim,
	}
	copy(c.names, names)

	for i, v := range vectors {
		if len(v) != dim {
			return nil, &LoadError{Err: fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedEmbeddings, i, len(v), dim)}
		}
		for k, x := range v {
			if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, &LoadError{Err: fmt.Errorf("%w: row %d (%q) index %d is %v", ErrNonFiniteEmbedding, i, names[i], k, x)}
			}
		}
		row := make([]float32, dim)
		copy(row, v)
		c.vectors[i] = row
	}

	return c, nil
}

// Len returns the number of songs.
func (c *Corpus) Len() int {
	return len(c.names)
}

// Dim returns the embedding dimension.
func (c *Corpus) Dim() int {
	return c.dim
}

// Name returns the name at position i.
func (c *Corpus) Name(i int) string {
	return c.names[i]
}

// Names returns a copy of the song names in corpus order.
func (c *Corpus) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Vector returns a copy of the embedding at position i.
func (c *Corpus) Vector(i int) []float32 {
	out := make([]float32, c.dim)
	copy(out, c.vectors[i])
	return out
}

// Vectors returns a copy of all embeddings in corpus order.
func (c *Corpus) Vectors() [][]float32 {
	out := make([][]float32, len(c.vectors))
	for i := range c.vectors {
		out[i] = c.Vector(i)
	}
	return out
}

// Stats summarizes properties of a corpus that affect matching and ranking.
type Stats struct {
	Songs int `json:"songs"`
	Dim   int `json:"dim"`

	// DuplicateNames lists case-folded names that occur more than once.
	// Exact lookup resolves these to the last occurrence.
	DuplicateNames []string `json:"duplicate_names"`

	// ZeroVectors lists positions whose embedding has zero norm.
	// These songs have similarity 0 to every song, including themselves.
	ZeroVectors []int `json:"zero_vectors"`
}

// Stats computes duplicate names and zero-norm vectors.
func (c *Corpus) Stats() Stats {
	s := Stats{
		Songs:          c.Len(),
		Dim:            c.dim,
		DuplicateNames: []string{},
		ZeroVectors:    []int{},
	}

	seen := make(map[string]int, len(c.names))
	for _, name := range c.names {
		key := strings.ToLower(name)
		seen[key]++
		if seen[key] == 2 {
			s.DuplicateNames = append(s.DuplicateNames, key)
		}
	}

	for i, v := range c.vectors {
		var sum float64
		for _, x := range v {
			sum += float64(x) * float64(x)
		}
		if sum == 0 {
			s.ZeroVectors = append(s.ZeroVectors, i)
		}
	}

	return s
}
