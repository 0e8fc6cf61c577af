// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Command vibecorpus inspects, converts and queries embedding artifacts offline.
//
//	vibecorpus inspect data/embeddings.json
//	vibecorpus convert data/embeddings.json data/embeddings.db
//	vibecorpus clean-name "001-2285379-Square a Saw-Echoes.mp3"
//	vibecorpus query data/embeddings.json "echoes" --top-k 3
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), NewRootCmd(version)); err != nil {
		os.Exit(1)
	}
}
