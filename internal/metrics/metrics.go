// Package metrics exposes the Prometheus collectors of the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route", "status"},
	)

	tripTxRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_tx_retries_total",
			Help: "Per-trip transactions replayed after a storage conflict",
		},
		[]string{"operation"},
	)

	catalogInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_invalidations_total",
			Help: "Times the in-memory catalog snapshot was dropped",
		},
	)
)

// RecordHTTPRequest records one served request. route is the matched route
// template, not the raw path, to keep label cardinality bounded.
func RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// RecordTxRetry counts a replayed per-trip transaction.
func RecordTxRetry(operation string) {
	tripTxRetries.WithLabelValues(operation).Inc()
}

// RecordCatalogInvalidation counts a dropped catalog snapshot.
func RecordCatalogInvalidation() {
	catalogInvalidations.Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
