// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateHistory(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateCatalog validates catalog loading configuration
func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if c.Catalog.MinRating < 0 {
		return fmt.Errorf("CATALOG_MIN_RATING must be non-negative")
	}
	if c.Catalog.ReloadInterval < 0 {
		return fmt.Errorf("CATALOG_RELOAD_INTERVAL must be non-negative")
	}
	if c.Catalog.ReloadInterval > 0 && c.Catalog.ReloadInterval < time.Second {
		return fmt.Errorf("CATALOG_RELOAD_INTERVAL must be at least 1s when enabled")
	}
	if c.Catalog.ReloadCooldown < 0 {
		return fmt.Errorf("CATALOG_RELOAD_COOLDOWN must be non-negative")
	}
	if c.Catalog.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative")
	}
	if c.Catalog.BreakerFailures < 1 {
		return fmt.Errorf("CATALOG_BREAKER_FAILURES must be at least 1")
	}
	if c.Catalog.BreakerTimeout <= 0 {
		return fmt.Errorf("CATALOG_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validAnalyzers defines the allowed genre analyzers
var validAnalyzers = map[string]bool{
	"genre": true,
	"word":  true,
}

// validateRecommend validates recommendation engine configuration
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if !validAnalyzers[strings.ToLower(strings.TrimSpace(r.Analyzer))] {
		return fmt.Errorf("RECOMMEND_ANALYZER must be one of: genre, word")
	}

	limits := []struct {
		name  string
		value int
	}{
		{"RECOMMEND_SEED_CANDIDATES", r.SeedCandidates},
		{"RECOMMEND_SEED_RESULTS", r.SeedResults},
		{"RECOMMEND_GENRE_CANDIDATES", r.GenreCandidates},
		{"RECOMMEND_GENRE_RESULTS", r.GenreResults},
		{"RECOMMEND_TOP_RESULTS", r.TopResults},
		{"RECOMMEND_MAX_RESULTS", r.MaxResults},
	}
	for _, l := range limits {
		if l.value < 1 {
			return fmt.Errorf("%s must be at least 1", l.name)
		}
	}

	if r.SeedResults > r.MaxResults || r.GenreResults > r.MaxResults || r.TopResults > r.MaxResults {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS (%d) must not be below the default result counts", r.MaxResults)
	}

	if r.CacheEnabled {
		if r.CacheTTL <= 0 {
			return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when caching is enabled")
		}
		if r.CacheMaxEntries < 1 {
			return fmt.Errorf("RECOMMEND_CACHE_MAX_ENTRIES must be at least 1 when caching is enabled")
		}
	}
	return nil
}

// validHistoryStores defines the allowed history backends
var validHistoryStores = map[string]bool{
	"memory": true,
	"badger": true,
}

// validateHistory validates history store configuration
func (c *Config) validateHistory() error {
	if !validHistoryStores[c.History.Store] {
		return fmt.Errorf("HISTORY_STORE must be one of: memory, badger")
	}
	if c.History.Store == "badger" && strings.TrimSpace(c.History.Path) == "" {
		return fmt.Errorf("HISTORY_PATH is required when HISTORY_STORE=badger")
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("HISTORY_MAX_ENTRIES must be non-negative")
	}
	if c.History.TTL < 0 {
		return fmt.Errorf("HISTORY_TTL must be non-negative")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// HasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
