package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates and registers a new CounterVec.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: name, Help: help},
		labels,
	)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram creates and registers a new HistogramVec. Pass nil
// buckets to use the Prometheus defaults.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	hist := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets},
		labels,
	)
	m.registerer.MustRegister(hist)
	return hist
}

// CreateGauge creates and registers a new GaugeVec.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: name, Help: help},
		labels,
	)
	m.registerer.MustRegister(gauge)
	return gauge
}
