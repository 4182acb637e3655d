// Package observability exposes Prometheus metrics for the service.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~20s
		},
		[]string{"method", "route", "status"},
	)

	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geojson_validations_total",
			Help: "GeoJSON validations by document type and outcome.",
		},
		[]string{"type", "outcome"},
	)

	storeOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_ops_total",
			Help: "Document store operations by outcome.",
		},
		[]string{"op", "outcome"},
	)

	storeOpDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_op_duration_seconds",
			Help:    "Duration of document store operations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"op"},
	)

	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_build_info",
			Help: "Build information for the binary.",
		},
		[]string{"version"},
	)
)

func ObserveHTTP(method, route string, status int, durationSeconds float64) {
	st := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, st).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route, st).Observe(durationSeconds)
}

func ObserveValidation(docType string, valid bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	if docType == "" {
		docType = "unknown"
	}
	validationsTotal.WithLabelValues(docType, outcome).Inc()
}

func ObserveStoreOp(op string, err error, durationSeconds float64) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	storeOpsTotal.WithLabelValues(op, outcome).Inc()
	storeOpDurationSeconds.WithLabelValues(op).Observe(durationSeconds)
}

func ExposeBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	buildInfo.WithLabelValues(version).Set(1)
}
