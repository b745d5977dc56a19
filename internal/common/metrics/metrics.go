// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InsightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_requests_total",
			Help: "Total number of insight submissions by outcome",
		},
		[]string{"outcome"},
	)

	InsightFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insight_failures_total",
			Help: "Total number of failed insight submissions by error code",
		},
		[]string{"error_code"},
	)

	InsightGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "insight_generation_duration_seconds",
			Help:    "Duration of narrative generation calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
		[]string{"provider"},
	)

	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of catalog listing requests",
		},
		[]string{"category"},
	)
)
