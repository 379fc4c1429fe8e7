package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	queriesFetched    *prometheus.CounterVec
	queriesDegraded   prometheus.Counter
	upstreamDuration  prometheus.Histogram
	cacheLookups      *prometheus.CounterVec
	tokenAcquisitions *prometheus.CounterVec
	tokenDuration     prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		queriesFetched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_queries_total",
				Help: "Total number of sales queries by data source and status",
			},
			[]string{"source", "status"},
		),
		queriesDegraded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sales_queries_degraded_total",
				Help: "Total number of upstream failures answered with generated data",
			},
		),
		upstreamDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sales_upstream_duration_milliseconds",
				Help:    "Upstream sales fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "query_cache_lookups_total",
				Help: "Total number of query cache lookups by outcome",
			},
			[]string{"outcome"},
		),
		tokenAcquisitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "token_acquisitions_total",
				Help: "Total number of token acquisitions by outcome",
			},
			[]string{"outcome"},
		),
		tokenDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "token_acquisition_duration_milliseconds",
				Help:    "Token acquisition duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "query.fetched":
		m.queriesFetched.WithLabelValues(tags["source"], tags["status"]).Inc()
	case "query.degraded":
		m.queriesDegraded.Inc()
	case "cache.lookup":
		m.cacheLookups.WithLabelValues(tags["outcome"]).Inc()
	case "token.acquired":
		m.tokenAcquisitions.WithLabelValues(tags["outcome"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "query.upstream":
		m.upstreamDuration.Observe(float64(duration.Milliseconds()))
	case "token.acquisition":
		m.tokenDuration.Observe(float64(duration.Milliseconds()))
	}
}

// noopMetrics discards all recordings; used in tests
type noopMetrics struct{}

// NewNoopMetrics returns a metrics recorder that discards everything
func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
