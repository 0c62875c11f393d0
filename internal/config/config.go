// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Configuration is loaded by LoadWithKoanf from three layers, last wins:
// built-in defaults, an optional YAML file, and mapped environment variables.
//
// Thread Safety:
// Config is immutable after LoadWithKoanf() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	History   HistoryConfig   `koanf:"history"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_PORT: Listen port (default: 8501)
//   - HTTP_HOST: Listen address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
//   - ENVIRONMENT: development or production (default: development)
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig controls where the catalog comes from and how it is cleaned.
//
// Environment Variables:
//   - CATALOG_PATH: CSV file (default: data/anime.csv)
//   - CATALOG_MIN_RATING: Drop titles rated below this (default: 1)
//   - CATALOG_RELOAD_INTERVAL: Periodic reload, 0 disables (default: 0)
//   - CATALOG_RELOAD_COOLDOWN: Minimum gap between SIGHUP reloads (default: 10s)
//   - DUCKDB_THREADS: DuckDB worker threads, 0 = all CPUs (default: 0)
//   - DUCKDB_MAX_MEMORY: DuckDB memory cap (default: 512MB)
//   - CATALOG_BREAKER_FAILURES: Consecutive failed reloads that open the circuit (default: 3)
//   - CATALOG_BREAKER_TIMEOUT: How long the circuit stays open (default: 5m)
type CatalogConfig struct {
	Path            string        `koanf:"path"`
	MinRating       float64       `koanf:"min_rating"`
	ReloadInterval  time.Duration `koanf:"reload_interval"`
	ReloadCooldown  time.Duration `koanf:"reload_cooldown"`
	Threads         int           `koanf:"threads"`
	MaxMemory       string        `koanf:"max_memory"`
	BreakerFailures int           `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// RecommendConfig holds recommendation engine settings.
//
// Environment Variables:
//   - RECOMMEND_ANALYZER: genre or word (default: genre)
//   - RECOMMEND_STOP_WORDS: Drop English stop words, word analyzer only (default: false)
//   - RECOMMEND_SEED_CANDIDATES: Neighbors fetched in seed-item mode (default: 200)
//   - RECOMMEND_SEED_RESULTS: Default seed-item results (default: 5)
//   - RECOMMEND_GENRE_CANDIDATES: Neighbors fetched in genre mode (default: 50)
//   - RECOMMEND_GENRE_RESULTS: Default genre-mode results (default: 5)
//   - RECOMMEND_TOP_RESULTS: Default top-list length (default: 10)
//   - RECOMMEND_MAX_RESULTS: Upper bound for any limit (default: 50)
//   - RECOMMEND_CACHE_ENABLED: Cache query results (default: true)
//   - RECOMMEND_CACHE_TTL: Result cache TTL (default: 5m)
//   - RECOMMEND_CACHE_MAX_ENTRIES: Result cache capacity per mode (default: 1000)
type RecommendConfig struct {
	Analyzer        string        `koanf:"analyzer"`
	StopWords       bool          `koanf:"stop_words"`
	SeedCandidates  int           `koanf:"seed_candidates"`
	SeedResults     int           `koanf:"seed_results"`
	GenreCandidates int           `koanf:"genre_candidates"`
	GenreResults    int           `koanf:"genre_results"`
	TopResults      int           `koanf:"top_results"`
	MaxResults      int           `koanf:"max_results"`
	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
}

// HistoryConfig selects the per-session history backend.
//
// Environment Variables:
//   - HISTORY_STORE: memory or badger (default: memory)
//   - HISTORY_PATH: BadgerDB directory (default: /data/history)
//   - HISTORY_MAX_ENTRIES: Entries kept per session (default: 100)
//   - HISTORY_TTL: Entry expiry, badger only, 0 disables (default: 720h)
type HistoryConfig struct {
	Store      string        `koanf:"store"`
	Path       string        `koanf:"path"`
	MaxEntries int           `koanf:"max_entries"`
	TTL        time.Duration `koanf:"ttl"`
}

// SecurityConfig holds HTTP hardening settings.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
