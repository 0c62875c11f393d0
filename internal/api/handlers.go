// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/history"
	"github.com/tomtom215/animerec/internal/middleware"
	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writing, parameter parsing, error mapping
//   - handlers_health.go: liveness, readiness and health
//   - handlers_catalog.go: stats, genres, types, top lists, item detail
//   - handlers_recommend.go: title resolution, seed-item and genre queries
//   - handlers_history.go: per-session history
type Handler struct {
	engines   *recommend.Holder
	history   history.Store
	version   string
	startTime time.Time
}

// NewHandler creates a handler serving the engine published by engines.
// The holder may be empty until the first catalog load; catalog and
// recommendation endpoints answer 503 until then.
func NewHandler(engines *recommend.Holder, store history.Store, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		engines:   engines,
		history:   store,
		version:   version,
		startTime: time.Now(),
	}
}

// engine returns the active engine or writes 503 and returns nil.
func (h *Handler) engine(w http.ResponseWriter) *recommend.Engine {
	e := h.engines.Load()
	if e == nil {
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeServiceUnavailable, "Catalog not loaded yet", ErrCatalogNotLoaded)
	}
	return e
}

// sessionLog returns the history log of the request's session.
func (h *Handler) sessionLog(r *http.Request) *history.SessionLog {
	return history.ForSession(h.history, middleware.SessionID(r.Context()))
}
