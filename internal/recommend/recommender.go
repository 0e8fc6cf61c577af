// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/vibesearch/internal/corpus"
	"github.com/tomtom215/vibesearch/internal/logging"
	"github.com/tomtom215/vibesearch/internal/metrics"
	"github.com/tomtom215/vibesearch/internal/similarity"
)

// Recommender ranks corpus songs by similarity to a queried song.
// It is built once and is safe for concurrent use.
type Recommender struct {
	corpus  *corpus.Corpus
	matrix  *similarity.Matrix
	matcher *Matcher
	logger  zerolog.Logger
}

// New creates a Recommender over c using a precomputed similarity matrix.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(c *corpus.Corpus, m *similarity.Matrix, logger zerolog.Logger) (*Recommender, error) {
	if c == nil || m == nil {
		return nil, fmt.Errorf("corpus and similarity matrix are required")
	}
	if c.Len() != m.Len() {
		return nil, fmt.Errorf("similarity matrix has %d rows, corpus has %d songs", m.Len(), c.Len())
	}

	return &Recommender{
		corpus:  c,
		matrix:  m,
		matcher: NewMatcher(c.Names()),
		logger:  logger.With().Str("component", "recommender").Logger(),
	}, nil
}

// FromCorpus builds the similarity matrix for c and returns a Recommender over it.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func FromCorpus(c *corpus.Corpus, logger zerolog.Logger) (*Recommender, error) {
	if c == nil {
		return nil, fmt.Errorf("corpus is required")
	}
	return New(c, similarity.Build(c.Vectors()), logger)
}

// Songs returns every song name in corpus order, duplicates included.
func (r *Recommender) Songs() []string {
	return r.corpus.Names()
}

// Len returns the number of songs loaded.
func (r *Recommender) Len() int {
	return r.corpus.Len()
}

// Recommend resolves query and returns up to topK most similar other songs.
func (r *Recommender) Recommend(ctx context.Context, query string, topK int) Result {
	start := time.Now()

	logger := r.requestLogger(ctx)

	idx, ok := r.matcher.Find(query)
	if !ok {
		metrics.RecordRecommendation(false, time.Since(start))
		logger.Debug().Str("query", query).Msg("No song matched query")
		return NoMatch{Query: query}
	}

	res := Match{
		Name:            r.corpus.Name(idx),
		Index:           idx,
		Recommendations: r.rank(idx, topK),
	}

	metrics.RecordRecommendation(true, time.Since(start))
	logger.Debug().
		Str("query", query).
		Str("matched", res.Name).
		Int("top_k", topK).
		Int("results", len(res.Recommendations)).
		Msg("Recommendation computed")

	return res
}

// requestLogger adds the request and correlation IDs carried by ctx to the component logger.
func (r *Recommender) requestLogger(ctx context.Context) zerolog.Logger {
	logCtx := r.logger.With()
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("correlation_id", id)
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	return logCtx.Logger()
}

// rank sorts every song by similarity to idx, takes topK+1, drops idx and cuts to topK.
func (r *Recommender) rank(idx, topK int) []Scored {
	if topK <= 0 {
		return []Scored{}
	}

	order := make([]int, r.matrix.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return r.matrix.At(idx, order[a]) > r.matrix.At(idx, order[b])
	})

	window := topK + 1
	if window > len(order) {
		window = len(order)
	}

	out := make([]Scored, 0, topK)
	for _, j := range order[:window] {
		if j == idx {
			continue
		}
		out = append(out, Scored{Song: r.corpus.Name(j), Similarity: r.matrix.At(idx, j)})
	}
	if len(out) > topK {
		out = out[:topK]
	}

	return out
}
