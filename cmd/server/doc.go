// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

/*
Package main is the entry point for the vibesearch server.

The server loads a precomputed embedding artifact once at startup, builds the
pairwise cosine similarity matrix and serves song recommendations over HTTP.
All request-time state is read-only.

# Startup

 1. Configuration: koanf v2 (defaults, optional config.yaml, environment)
 2. Logging: zerolog initialized from the logging section
 3. Corpus: JSON or SQLite artifact loaded from CORPUS_PATH; any load error is fatal
 4. Recommender: similarity matrix built, optionally wrapped in the result cache
 5. Supervisor tree: HTTP server plus the cache janitor

	RootSupervisor ("vibesearch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheJanitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Example Usage

	export CORPUS_PATH=data/embeddings.json
	export HTTP_PORT=8000
	./vibesearch

	curl -s localhost:8000/recommend -H 'Content-Type: application/json' \
	  -d '{"song":"echoes","top_k":5}'

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and waits up to SHUTDOWN_TIMEOUT for in-flight requests.
*/
package main
