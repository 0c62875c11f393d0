// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are package-level globals registered with the default registry
through promauto, so any package can record without plumbing a registry.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Catalog Metrics:
  - catalog_load_duration_seconds: Full load time including fit and index (histogram)
  - catalog_load_errors_total: Failed loads (counter)
    Labels: stage (read, engine)
  - catalog_items: Items in the active catalog (gauge)
  - catalog_rows_dropped: Rows removed by cleaning in the last load (gauge)
  - catalog_vocabulary_size: TF-IDF dimensions (gauge)
  - catalog_last_reload_timestamp: Unix time of the last successful load (gauge)

Recommendation Metrics:
  - recommend_query_duration_seconds: Query latency (histogram)
    Labels: mode (similar, genre)
  - recommend_results_returned: Result count per query (histogram)
    Labels: mode
  - recommend_partial_results_total: Seed queries below the requested count (counter)
  - recommend_not_found_total: Unknown titles or genres (counter)
    Labels: mode

API Metrics:
  - api_requests_total: Total requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Cache and History Metrics:
  - cache_hits_total, cache_misses_total (counter)
    Labels: cache_type
  - history_append_errors_total (counter)
    Labels: store

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total (counter)
    Labels: name, result
  - circuit_breaker_state_transitions_total (counter)
    Labels: name, from_state, to_state

# Usage Example

	http.Handle("/metrics", promhttp.Handler())

	start := time.Now()
	result, err := engine.RecommendSimilar(ctx, req, recorder)
	metrics.RecordRecommendation("similar", time.Since(start), len(result.Items), result.Partial)
*/
package metrics
