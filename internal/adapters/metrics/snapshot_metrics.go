package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/smuggler-go/internal/application/trading/snapshot"
)

// SnapshotMetricsCollector records snapshot refreshes
type SnapshotMetricsCollector struct {
	refreshesTotal  *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	lastSwap        prometheus.Gauge
}

// NewSnapshotMetricsCollector creates a new snapshot metrics collector
func NewSnapshotMetricsCollector() *SnapshotMetricsCollector {
	return &SnapshotMetricsCollector{
		refreshesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "snapshot_refreshes_total",
				Help:      "Snapshot refreshes by result (swapped, kept_previous, unusable)",
			},
			[]string{"result"},
		),

		refreshDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "snapshot_refresh_duration_seconds",
				Help:      "Time to fetch a complete snapshot",
				Buckets:   []float64{0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
			},
		),

		lastSwap: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "snapshot_last_swap_timestamp_seconds",
				Help:      "Unix time of the last successful snapshot swap",
			},
		),
	}
}

// Register registers all snapshot metrics with the Prometheus registry
func (c *SnapshotMetricsCollector) Register() error {
	return register(c.refreshesTotal, c.refreshDuration, c.lastSwap)
}

// RecordSnapshotRefresh records one refresh
func (c *SnapshotMetricsCollector) RecordSnapshotRefresh(result string, duration time.Duration) {
	c.refreshesTotal.WithLabelValues(result).Inc()
	c.refreshDuration.Observe(duration.Seconds())
	if result == snapshot.ResultSwapped {
		c.lastSwap.SetToCurrentTime()
	}
}
