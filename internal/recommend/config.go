// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/animerec/internal/recommend/encoder"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Encoder controls tokenization of genre strings.
	Encoder EncoderConfig `json:"encoder"`

	// Limits contains candidate and result counts.
	Limits LimitsConfig `json:"limits"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// EncoderConfig selects how genre strings become vectors.
type EncoderConfig struct {
	// Analyzer is "genre" (comma-separated labels) or "word".
	// Default: "genre".
	Analyzer encoder.Analyzer `json:"analyzer"`

	// StopWords drops common English words before fitting.
	// Default: false.
	StopWords bool `json:"stop_words"`
}

// LimitsConfig contains candidate and result counts.
type LimitsConfig struct {
	// SeedCandidates is the neighbor count fetched for seed-item queries.
	// Default: 200.
	SeedCandidates int `json:"seed_candidates"`

	// SeedResults is the default result count for seed-item queries.
	// Default: 5.
	SeedResults int `json:"seed_results"`

	// GenreCandidates is the neighbor count fetched for genre-text queries.
	// Default: 50.
	GenreCandidates int `json:"genre_candidates"`

	// GenreResults is the default result count for genre-text queries.
	// Default: 5.
	GenreResults int `json:"genre_results"`

	// TopResults is the default size of top-by-members and top-by-rating lists.
	// Default: 10.
	TopResults int `json:"top_results"`

	// MaxResults caps any caller-supplied limit.
	// Default: 50.
	MaxResults int `json:"max_results"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled controls whether query results are cached.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached results.
	// Default: 1000.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Encoder: EncoderConfig{
			Analyzer: encoder.AnalyzerGenre,
		},
		Limits: LimitsConfig{
			SeedCandidates:  200,
			SeedResults:     5,
			GenreCandidates: 50,
			GenreResults:    5,
			TopResults:      10,
			MaxResults:      50,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := encoder.ParseAnalyzer(string(c.Encoder.Analyzer)); err != nil {
		return fmt.Errorf("encoder.analyzer: %w", err)
	}

	if c.Limits.SeedCandidates < 1 {
		return fmt.Errorf("limits.seed_candidates must be positive, got %d", c.Limits.SeedCandidates)
	}
	if c.Limits.GenreCandidates < 1 {
		return fmt.Errorf("limits.genre_candidates must be positive, got %d", c.Limits.GenreCandidates)
	}
	if c.Limits.SeedResults < 1 {
		return fmt.Errorf("limits.seed_results must be positive, got %d", c.Limits.SeedResults)
	}
	if c.Limits.GenreResults < 1 {
		return fmt.Errorf("limits.genre_results must be positive, got %d", c.Limits.GenreResults)
	}
	if c.Limits.TopResults < 1 {
		return fmt.Errorf("limits.top_results must be positive, got %d", c.Limits.TopResults)
	}
	if c.Limits.MaxResults < c.Limits.SeedResults || c.Limits.MaxResults < c.Limits.GenreResults {
		return fmt.Errorf("limits.max_results must be >= seed_results and genre_results, got %d", c.Limits.MaxResults)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	return &Config{
		Encoder: c.Encoder,
		Limits:  c.Limits,
		Cache:   c.Cache,
	}
}

// clampLimit resolves a caller-supplied limit against a default and the cap.
func (c *Config) clampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	if limit > c.Limits.MaxResults {
		limit = c.Limits.MaxResults
	}
	return limit
}
