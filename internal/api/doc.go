// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package api provides the HTTP REST API layer for Animerec.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers reading the engine published by a recommend.Holder
  - Response formatting: the models.APIResponse envelope, or an HTML/text
    rendering for list and detail endpoints when ?format= asks for one
  - Error handling: engine errors mapped to HTTP status codes
  - Rate limiting: go-chi/httprate keyed by client IP
  - CORS: go-chi/cors, exposing the session and request ID headers

Endpoints:

	GET    /api/v1/health                     service health
	GET    /api/v1/health/live                liveness probe
	GET    /api/v1/health/ready               readiness probe (503 until a catalog loads)
	GET    /api/v1/catalog/stats              catalog statistics
	GET    /api/v1/catalog/genres             distinct genre labels
	GET    /api/v1/catalog/types              distinct media types
	GET    /api/v1/catalog/top                ?by=members|rating&limit=
	GET    /api/v1/catalog/items/{name}       one title
	GET    /api/v1/recommendations/resolve    ?q=
	GET    /api/v1/recommendations/similar    ?title=&type=&limit=
	GET    /api/v1/recommendations/genre      ?genre=&sort=&limit=
	GET    /api/v1/history                    ?limit=
	DELETE /api/v1/history
	GET    /metrics                           Prometheus exposition

Sessions:

Every /api/v1 request outside the health probes carries a session ID
(X-Session-ID header or animerec_session cookie, generated when absent).
Recommendation queries are recorded in that session's history.

Usage Example:

	holder := recommend.NewHolder(engine)
	handler := api.NewHandler(holder, historyStore, version)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}

Errors are always returned as a JSON envelope, whatever format was requested:

	{"status":"error","error":{"code":"NOT_FOUND","message":"not found: title \"X\""},"metadata":{...}}
*/
package api
