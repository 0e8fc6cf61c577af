// Vibesearch - Song Similarity Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vibesearch

// Package config loads and validates vibesearch configuration.
//
// Configuration is layered with koanf, lowest priority first:
//
//  1. Struct defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, ./config.yml, /etc/vibesearch/config.yaml)
//  3. Environment variables, after an optional .env file has been loaded
//
// Only environment variables listed in the mapping table are read, so unrelated
// process environment never leaks into the configuration.
//
// # Environment Variables
//
//	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT, SWAGGER_ENABLED
//	CORPUS_PATH (alias EMBEDDINGS_PATH), CORPUS_FORMAT
//	DEFAULT_TOP_K, RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_SIZE, RECOMMEND_CACHE_TTL
//	CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
//	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//	METRICS_ENABLED
package config
