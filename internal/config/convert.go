// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"strings"

	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/history"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/recommend/encoder"
	"github.com/tomtom215/animerec/internal/supervisor/services"
)

// EngineConfig returns the recommendation engine settings.
func (c *Config) EngineConfig() *recommend.Config {
	r := c.Recommend
	return &recommend.Config{
		Encoder: recommend.EncoderConfig{
			Analyzer:  encoder.Analyzer(strings.ToLower(strings.TrimSpace(r.Analyzer))),
			StopWords: r.StopWords,
		},
		Limits: recommend.LimitsConfig{
			SeedCandidates:  r.SeedCandidates,
			SeedResults:     r.SeedResults,
			GenreCandidates: r.GenreCandidates,
			GenreResults:    r.GenreResults,
			TopResults:      r.TopResults,
			MaxResults:      r.MaxResults,
		},
		Cache: recommend.CacheConfig{
			Enabled:    r.CacheEnabled,
			TTL:        r.CacheTTL,
			MaxEntries: r.CacheMaxEntries,
		},
	}
}

// CatalogLoaderConfig returns the DuckDB loader settings.
func (c *Config) CatalogLoaderConfig() catalog.Config {
	return catalog.Config{
		Path:      c.Catalog.Path,
		MinRating: c.Catalog.MinRating,
		Threads:   c.Catalog.Threads,
		MaxMemory: c.Catalog.MaxMemory,
	}
}

// CatalogBreakerConfig returns the circuit breaker settings for catalog loads.
func (c *Config) CatalogBreakerConfig() catalog.BreakerConfig {
	failures := c.Catalog.BreakerFailures
	if failures < 0 {
		failures = 0
	}
	return catalog.BreakerConfig{
		Name:                "catalog-loader",
		ConsecutiveFailures: uint32(failures), //nolint:gosec // validated non-negative above
		Timeout:             c.Catalog.BreakerTimeout,
	}
}

// HistoryStoreConfig returns the history backend settings.
func (c *Config) HistoryStoreConfig() history.Config {
	return history.Config{
		Type:       history.StoreType(c.History.Store),
		Path:       c.History.Path,
		MaxEntries: c.History.MaxEntries,
		TTL:        c.History.TTL,
	}
}

// ReloadServiceConfig returns the catalog reload schedule.
func (c *Config) ReloadServiceConfig() services.ReloadConfig {
	return services.ReloadConfig{
		Interval: c.Catalog.ReloadInterval,
		Cooldown: c.Catalog.ReloadCooldown,
	}
}

// LoggerConfig returns the zerolog settings.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}
