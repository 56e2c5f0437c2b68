package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace for all metrics
	namespace = "smuggler"
	// Subsystem for market data metrics
	subsystem = "market"
)

// Registry is the global Prometheus registry; nil while metrics are disabled
var Registry *prometheus.Registry

// InitRegistry creates the registry along with the Go runtime and process collectors.
// Call once at startup when metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// GetRegistry returns the global registry, or nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	if Registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// Collectors bundles every collector the application records to
type Collectors struct {
	API      *APIMetricsCollector
	Fetch    *FetchMetricsCollector
	Snapshot *SnapshotMetricsCollector
	Command  *CommandMetricsCollector
}

// NewCollectors creates all collectors and registers them with the global registry.
// Collectors are usable even when the registry is nil; they simply are not exported.
func NewCollectors() (*Collectors, error) {
	c := &Collectors{
		API:      NewAPIMetricsCollector(),
		Fetch:    NewFetchMetricsCollector(),
		Snapshot: NewSnapshotMetricsCollector(),
		Command:  NewCommandMetricsCollector(),
	}

	registrars := []interface{ Register() error }{c.API, c.Fetch, c.Snapshot, c.Command}
	for _, r := range registrars {
		if err := r.Register(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func register(metrics ...prometheus.Collector) error {
	if Registry == nil {
		return nil // metrics not enabled
	}
	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}
