// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/animerec/internal/catalog"
	"github.com/tomtom215/animerec/internal/recommend"
)

// ReloadConfig holds configuration for the catalog reload service.
type ReloadConfig struct {
	// Interval is how often the catalog is reloaded. Zero disables
	// periodic reloads; Trigger still works.
	Interval time.Duration

	// Timeout bounds a single load and fit.
	// Default: 5m
	Timeout time.Duration

	// Cooldown is the minimum gap between triggered reloads. Triggers
	// arriving sooner are dropped. Zero disables the limit.
	Cooldown time.Duration
}

// CatalogReloadService rebuilds the engine from the catalog and publishes
// it through a recommend.Holder.
//
// When the holder is empty at startup the first load runs immediately and
// a failure is returned to the supervisor, which retries with backoff.
// Once an engine is published, failed reloads are logged and the previous
// engine keeps serving.
type CatalogReloadService struct {
	loader    catalog.Loader
	holder    *recommend.Holder
	engineCfg *recommend.Config
	config    ReloadConfig
	logger    zerolog.Logger
	trigger   chan struct{}
	limiter   *rate.Limiter
	name      string
}

// NewCatalogReloadService creates a reload service. engineCfg is passed to
// every engine it builds.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogReloadService(loader catalog.Loader, holder *recommend.Holder, engineCfg *recommend.Config, cfg ReloadConfig, logger zerolog.Logger) *CatalogReloadService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	limit := rate.Inf
	if cfg.Cooldown > 0 {
		limit = rate.Every(cfg.Cooldown)
	}
	return &CatalogReloadService{
		loader:    loader,
		holder:    holder,
		engineCfg: engineCfg,
		config:    cfg,
		logger:    logger.With().Str("service", "catalog-reload").Logger(),
		trigger:   make(chan struct{}, 1),
		limiter:   rate.NewLimiter(limit, 1),
		name:      "catalog-reload",
	}
}

// Trigger requests a reload outside the schedule. Requests made while one
// is pending are coalesced, and requests inside the cooldown are dropped.
// It reports whether the request was accepted.
func (s *CatalogReloadService) Trigger() bool {
	if !s.limiter.Allow() {
		s.logger.Warn().Dur("cooldown", s.config.Cooldown).Msg("catalog reload throttled")
		return false
	}
	select {
	case s.trigger <- struct{}{}:
	default:
	}
	return true
}

// Serve implements suture.Service.
func (s *CatalogReloadService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Msg("catalog reload service starting")

	if s.holder.Load() == nil {
		if err := s.reload(ctx); err != nil {
			return fmt.Errorf("initial catalog load: %w", err)
		}
	}

	var tick <-chan time.Time
	if s.config.Interval > 0 {
		ticker := time.NewTicker(s.config.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog reload service shutting down")
			return ctx.Err()

		case <-tick:
			s.logger.Debug().Msg("scheduled catalog reload triggered")
			if err := s.reload(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled catalog reload failed, keeping current engine")
			}

		case <-s.trigger:
			s.logger.Info().Msg("catalog reload requested")
			if err := s.reload(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("requested catalog reload failed, keeping current engine")
			}
		}
	}
}

// reload builds a new engine and swaps it in.
func (s *CatalogReloadService) reload(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	engine, res, err := catalog.Build(loadCtx, s.loader, s.engineCfg, s.logger)
	if err != nil {
		return err
	}

	prev := s.holder.Swap(engine)
	stats := engine.Stats()
	s.logger.Info().
		Int("rows", res.Rows).
		Int("items", stats.Items).
		Int("dropped", res.Dropped+stats.Dropped).
		Int("vocabulary", stats.Vocabulary).
		Bool("replaced", prev != nil).
		Dur("duration", time.Since(start)).
		Msg("catalog loaded")
	return nil
}

// String returns the service name for logging.
func (s *CatalogReloadService) String() string {
	return s.name
}
