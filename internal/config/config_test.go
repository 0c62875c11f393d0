// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "negative shutdown timeout",
			mutate:  func(c *Config) { c.Server.ShutdownTimeout = -time.Second },
			wantErr: "SHUTDOWN_TIMEOUT",
		},
		{
			name:    "blank catalog path",
			mutate:  func(c *Config) { c.Catalog.Path = "  " },
			wantErr: "CATALOG_PATH",
		},
		{
			name:    "negative min rating",
			mutate:  func(c *Config) { c.Catalog.MinRating = -1 },
			wantErr: "CATALOG_MIN_RATING",
		},
		{
			name:    "reload interval too short",
			mutate:  func(c *Config) { c.Catalog.ReloadInterval = 10 * time.Millisecond },
			wantErr: "CATALOG_RELOAD_INTERVAL",
		},
		{
			name:    "breaker failures zero",
			mutate:  func(c *Config) { c.Catalog.BreakerFailures = 0 },
			wantErr: "CATALOG_BREAKER_FAILURES",
		},
		{
			name:   "analyzer is case-insensitive",
			mutate: func(c *Config) { c.Recommend.Analyzer = "Word" },
		},
		{
			name:    "unknown analyzer",
			mutate:  func(c *Config) { c.Recommend.Analyzer = "bigram" },
			wantErr: "RECOMMEND_ANALYZER",
		},
		{
			name:    "zero seed candidates",
			mutate:  func(c *Config) { c.Recommend.SeedCandidates = 0 },
			wantErr: "RECOMMEND_SEED_CANDIDATES",
		},
		{
			name:    "max results below defaults",
			mutate:  func(c *Config) { c.Recommend.MaxResults = 3 },
			wantErr: "RECOMMEND_MAX_RESULTS",
		},
		{
			name:    "cache ttl required when enabled",
			mutate:  func(c *Config) { c.Recommend.CacheTTL = 0 },
			wantErr: "RECOMMEND_CACHE_TTL",
		},
		{
			name: "cache settings ignored when disabled",
			mutate: func(c *Config) {
				c.Recommend.CacheEnabled = false
				c.Recommend.CacheTTL = 0
				c.Recommend.CacheMaxEntries = 0
			},
		},
		{
			name:    "unknown history store",
			mutate:  func(c *Config) { c.History.Store = "redis" },
			wantErr: "HISTORY_STORE",
		},
		{
			name: "badger needs a path",
			mutate: func(c *Config) {
				c.History.Store = "badger"
				c.History.Path = ""
			},
			wantErr: "HISTORY_PATH",
		},
		{
			name:   "memory store ignores path",
			mutate: func(c *Config) { c.History.Path = "" },
		},
		{
			name:    "rate limit out of range",
			mutate:  func(c *Config) { c.Security.RateLimitReqs = 0 },
			wantErr: "RATE_LIMIT_REQUESTS",
		},
		{
			name: "rate limit ignored when disabled",
			mutate: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
			},
		},
		{
			name:    "rate limit window too long",
			mutate:  func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour },
			wantErr: "RATE_LIMIT_WINDOW",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"Production", true},
		{"development", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Server.Environment = tt.env
			if got := cfg.IsProduction(); got != tt.want {
				t.Errorf("IsProduction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasWildcardCORS(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("HasWildcardCORS() = false for default origins")
	}
	cfg.Security.CORSOrigins = []string{"https://example.com"}
	if cfg.HasWildcardCORS() {
		t.Error("HasWildcardCORS() = true for explicit origin list")
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8501, "0.0.0.0:8501"},
		{"", 9000, ":9000"},
		{"::1", 8080, "[::1]:8080"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s := ServerConfig{Host: tt.host, Port: tt.port}
			if got := s.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}
