// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package recommend

import (
	"errors"
	"fmt"
)

// ErrSongNotFound is returned by NoMatch.Err for callers that need an error value.
var ErrSongNotFound = errors.New("song not found")

// Scored is one recommended song with its cosine similarity to the matched song.
type Scored struct {
	Song       string  `json:"song"`
	Similarity float64 `json:"similarity"`
}

// Result is the outcome of a recommendation lookup: either Match or NoMatch.
type Result interface {
	isResult()
}

// Match is returned when the query resolved to a corpus song.
// Recommendations must be treated as read-only; cached results share it.
type Match struct {
	// Name is the matched song as stored in the corpus.
	Name string

	// Index is the matched song's position in the corpus.
	Index int

	// Recommendations are ordered by descending similarity and never include Name's own entry.
	Recommendations []Scored
}

// NoMatch is returned when no corpus song matched the query.
type NoMatch struct {
	Query string
}

func (Match) isResult()   {}
func (NoMatch) isResult() {}

// Message describes the failed lookup and always contains the query.
func (n NoMatch) Message() string {
	return fmt.Sprintf("no song found matching '%s'", n.Query)
}

// Err wraps ErrSongNotFound with the query.
func (n NoMatch) Err() error {
	return fmt.Errorf("%w: %q", ErrSongNotFound, n.Query)
}
