package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
)

// FetchMetricsCollector records per-collection fetch outcomes
type FetchMetricsCollector struct {
	fetchesTotal   *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
	recordsFetched *prometheus.GaugeVec
	recordsSkipped *prometheus.CounterVec
}

// NewFetchMetricsCollector creates a new fetch metrics collector
func NewFetchMetricsCollector() *FetchMetricsCollector {
	return &FetchMetricsCollector{
		fetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "collection_fetches_total",
				Help:      "Collection fetches by collection and status (success, degraded)",
			},
			[]string{"collection", "status"},
		),

		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "collection_fetch_duration_seconds",
				Help:      "Time to fetch and decode one collection",
				Buckets:   []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
			[]string{"collection"},
		),

		recordsFetched: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "collection_records",
				Help:      "Records in the most recent fetch of each collection",
			},
			[]string{"collection"},
		),

		recordsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "collection_records_skipped_total",
				Help:      "Records dropped because they failed validation",
			},
			[]string{"collection"},
		),
	}
}

// Register registers all fetch metrics with the Prometheus registry
func (c *FetchMetricsCollector) Register() error {
	return register(c.fetchesTotal, c.fetchDuration, c.recordsFetched, c.recordsSkipped)
}

// RecordCollectionFetch records one collection outcome
func (c *FetchMetricsCollector) RecordCollectionFetch(outcome market.FetchOutcome) {
	collection := outcome.Collection.String()

	status := "success"
	if outcome.Failed() {
		status = "degraded"
	}

	c.fetchesTotal.WithLabelValues(collection, status).Inc()
	c.fetchDuration.WithLabelValues(collection).Observe(outcome.Duration.Seconds())
	c.recordsFetched.WithLabelValues(collection).Set(float64(outcome.Records))
	if outcome.Skipped > 0 {
		c.recordsSkipped.WithLabelValues(collection).Add(float64(outcome.Skipped))
	}
}
