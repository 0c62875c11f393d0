// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog Metrics
	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog loads (read, clean, fit, index) in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_load_errors_total",
			Help: "Total number of failed catalog loads",
		},
		[]string{"stage"}, // "read", "engine"
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of items in the active catalog",
		},
	)

	CatalogRowsDropped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_rows_dropped",
			Help: "Rows dropped by cleaning during the last catalog load",
		},
	)

	CatalogVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_vocabulary_size",
			Help: "Number of TF-IDF dimensions in the active catalog",
		},
	)

	CatalogLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_last_reload_timestamp",
			Help: "Unix timestamp of the last successful catalog load",
		},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_query_duration_seconds",
			Help:    "Recommendation query duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"mode"}, // "similar", "genre"
	)

	RecommendResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_results_returned",
			Help:    "Number of recommendations returned per query",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 8, 10, 20},
		},
		[]string{"mode"},
	)

	RecommendPartial = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_partial_results_total",
			Help: "Total number of seed queries that returned fewer results than requested",
		},
	)

	RecommendNotFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_not_found_total",
			Help: "Total number of queries whose title or genre matched nothing",
		},
		[]string{"mode"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "similar", "genre"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	// History Metrics
	HistoryAppendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "history_append_errors_total",
			Help: "Total number of history entries that could not be recorded",
		},
		[]string{"store"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one completed recommendation query.
func RecordRecommendation(mode string, duration time.Duration, returned int, partial bool) {
	RecommendDuration.WithLabelValues(mode).Observe(duration.Seconds())
	RecommendResults.WithLabelValues(mode).Observe(float64(returned))
	if partial {
		RecommendPartial.Inc()
	}
}

// RecordNotFound records a query that matched no title or genre.
func RecordNotFound(mode string) {
	RecommendNotFound.WithLabelValues(mode).Inc()
}

// RecordCatalogLoad records a catalog load. On success the catalog gauges
// are updated; on failure only the error counter for stage is incremented.
func RecordCatalogLoad(duration time.Duration, items, dropped, vocabulary int, stage string, err error) {
	CatalogLoadDuration.Observe(duration.Seconds())
	if err != nil {
		if stage == "" {
			stage = "other"
		}
		CatalogLoadErrors.WithLabelValues(stage).Inc()
		return
	}
	CatalogItems.Set(float64(items))
	CatalogRowsDropped.Set(float64(dropped))
	CatalogVocabularySize.Set(float64(vocabulary))
	CatalogLastReload.Set(float64(time.Now().Unix()))
}

// RecordCacheLookup records a query cache hit or miss.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}
