// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

package corpus

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// artifact is the JSON layout of a corpus.
type artifact struct {
	Names      []string    `json:"names"`
	Embeddings [][]float32 `json:"embeddings"`
}

func loadJSON(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}
	if a.Names == nil {
		return nil, fmt.Errorf("%w: missing \"names\"", ErrMalformedArtifact)
	}
	if a.Embeddings == nil {
		return nil, fmt.Errorf("%w: missing \"embeddings\"", ErrMalformedArtifact)
	}

	return New(a.Names, a.Embeddings)
}

// WriteJSON writes c to path in the JSON artifact layout.
func WriteJSON(c *Corpus, path string) error {
	data, err := json.Marshal(artifact{Names: c.names, Embeddings: c.vectors})
	if err != nil {
		return fmt.Errorf("failed to encode corpus: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
