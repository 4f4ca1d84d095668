// Package metrics exposes Prometheus metrics for the search-core module.
//
// The package deliberately ships no domain metrics of its own: each
// consuming package declares what it measures through the CreateCounter,
// CreateHistogram and CreateGauge factories, and this package supplies
// the isolated registry, the constant service label and the /metrics
// HTTP server. The inference package, for example, registers counters
// for query canonicalization outcomes and schema detection runs.
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	runs := m.CreateCounter("schema_detection_runs_total",
//	    "Total schema detection runs", []string{"status"})
//	runs.WithLabelValues("ok").Inc()
//
// With fx, use FXModule to start and stop the HTTP server with the
// application lifecycle.
package metrics
