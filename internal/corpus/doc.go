// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Package corpus holds the embedding store: an ordered list of song names and
// one embedding vector per name, loaded once from an artifact at startup.
//
// Two artifact layouts are supported:
//
//   - json: {"names": ["Artist - Title", ...], "embeddings": [[0.1, ...], ...]}
//   - sqlite: table songs(position INTEGER PRIMARY KEY, name TEXT, embedding BLOB)
//     with embeddings stored as little-endian float32
//
// Position i of the name list corresponds to row i of the embedding matrix. The
// loaded Corpus is never modified, so it can be shared by any number of readers.
//
// Every load failure is reported as a *LoadError. The specific cause can be
// tested with errors.Is against ErrCountMismatch, ErrEmptyCorpus,
// ErrRaggedEmbeddings, ErrMalformedArtifact and ErrUnknownFormat.
package corpus
