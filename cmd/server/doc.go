// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package main is the entry point for the Animerec HTTP server.
//
// Animerec recommends anime by genre similarity. It loads a CSV catalog
// through DuckDB, encodes each title's genre list as a TF-IDF vector and
// answers nearest-neighbour queries over those vectors.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Logging: zerolog, bridged to slog for the supervisor
//  3. History store: in-memory or BadgerDB per-session query history
//  4. Catalog loader: DuckDB CSV reader behind a circuit breaker
//  5. HTTP router: Chi with CORS, rate limiting and Prometheus metrics
//  6. Supervisor tree: catalog reload service and HTTP server
//
// The HTTP server starts before the first catalog load completes. Until an
// engine is published, catalog and recommendation endpoints answer 503 and
// /api/v1/health/ready reports not_ready.
//
// # Configuration
//
// Common environment variables:
//   - CATALOG_PATH: CSV file with name, genre, type, rating, members columns
//   - CATALOG_RELOAD_INTERVAL: periodic reload, e.g. 1h (0 disables)
//   - CATALOG_RELOAD_COOLDOWN: minimum gap between SIGHUP reloads (default 10s)
//   - HISTORY_STORE: memory or badger
//   - HISTORY_PATH: BadgerDB directory
//   - HTTP_PORT: listen port (default 8501)
//   - LOG_LEVEL, LOG_FORMAT
//
// # Signal Handling
//
//   - SIGINT, SIGTERM: graceful shutdown
//   - SIGHUP: reload the catalog without restarting
//
// # Example Usage
//
//	export CATALOG_PATH=./data/anime.csv
//	./animerec-server
//
//	curl 'localhost:8501/api/v1/recommendations/similar?title=Naruto&limit=5'
//	curl 'localhost:8501/api/v1/recommendations/genre?genre=Romance&sort=members'
package main
