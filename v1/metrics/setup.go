package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server that
// exposes it for scraping.
//
// Each service keeps its own isolated registry to prevent metric name
// collisions when multiple services run in one process. Domain packages
// register their own metrics through the Create* factories; this package
// ships no built-in metrics of its own.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry all metrics register against.
	Registry *prometheus.Registry

	// registerer wraps Registry with the constant service label.
	registerer prometheus.Registerer
}

// NewMetrics builds a Metrics instance with a dedicated registry, a
// constant service label on every metric, optional default runtime
// collectors and an HTTP server serving /metrics.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "search-core",
//	    EnableDefaultCollectors: true,
//	})
//	runs := m.CreateCounter("schema_detection_runs_total",
//	    "Total schema detection runs", []string{"status"})
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically carry
	// service="<cfg.ServiceName>".
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &Metrics{
		Server: &http.Server{
			Addr:    cfg.Address,
			Handler: handler,
		},
		Registry:   registry,
		registerer: wrapped,
	}
}
