// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package corpus

import (
	"errors"
	"fmt"
)

var (
	// ErrCountMismatch means the artifact has a different number of names and embeddings.
	ErrCountMismatch = errors.New("name count does not match embedding count")

	// ErrEmptyCorpus means the artifact contains no songs.
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrRaggedEmbeddings means embedding rows do not share one dimension.
	ErrRaggedEmbeddings = errors.New("embeddings have inconsistent dimensions")

	// ErrNonFiniteEmbedding means an embedding holds NaN or an infinity.
	ErrNonFiniteEmbedding = errors.New("embedding contains a non-finite value")

	// ErrMalformedArtifact means the artifact could not be decoded.
	ErrMalformedArtifact = errors.New("malformed artifact")

	// ErrUnknownFormat means the artifact format could not be determined.
	ErrUnknownFormat = errors.New("unknown artifact format")
)

// LoadError reports a corpus artifact that is missing, unreadable or malformed.
// A process that gets a LoadError at startup must not serve requests.
type LoadError struct {
	// Path is the artifact location, empty for in-memory construction.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("corpus load failed: %v", e.Err)
	}
	return fmt.Sprintf("corpus load failed for %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadError(path string, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		if le.Path == "" {
			le.Path = path
		}
		return le
	}
	return &LoadError{Path: path, Err: err}
}
