// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package middleware provides HTTP middleware for the Animerec API.

Key Components:

  - RequestID: assigns X-Request-ID and stores it in the logging context
  - Session: resolves the history session from X-Session-ID or the
    animerec_session cookie, generating one when absent
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(middleware.Session)
	    r.Get("/recommendations/similar", h.Similar)
	})

PrometheusMetrics reads the route pattern after the handler returns, so it
must be installed inside the router (r.Use), not wrapped around it.
*/
package middleware
