// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
)

// BreakerConfig tunes the circuit breaker around catalog loads.
type BreakerConfig struct {
	// Name labels the breaker in logs and metrics. Default "catalog-loader".
	Name string

	// ConsecutiveFailures opens the circuit. Default 3.
	ConsecutiveFailures uint32

	// Timeout is how long the circuit stays open before a trial load.
	// Default 1 minute.
	Timeout time.Duration
}

// BreakerLoader wraps a Loader with circuit breaker protection.
//
// The breaker uses real time for its open timeout. Tests drive it through
// failures and check that later calls are rejected without reaching the
// wrapped loader.
type BreakerLoader struct {
	next Loader
	cb   *gobreaker.CircuitBreaker[*LoadResult]
	name string
}

// NewBreakerLoader wraps next. Zero fields in cfg take their defaults.
func NewBreakerLoader(next Loader, cfg BreakerConfig) *BreakerLoader {
	if cfg.Name == "" {
		cfg.Name = "catalog-loader"
	}
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[*LoadResult](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1, // one trial load in half-open state
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
			if trip {
				logging.Warn().Uint32("failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},

		// A canceled load says nothing about the catalog file.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &BreakerLoader{next: next, cb: cb, name: cfg.Name}
}

// Load runs the wrapped loader unless the circuit is open.
func (b *BreakerLoader) Load(ctx context.Context) (*LoadResult, error) {
	res, err := b.cb.Execute(func() (*LoadResult, error) {
		return b.next.Load(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Catalog load rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return res, nil
}

// State returns the breaker state: "closed", "half-open" or "open".
func (b *BreakerLoader) State() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
