package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus metrics for store operations. All recording
// methods are nil-safe, so an uninstrumented Store pays only a nil check.
type Metrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	fileEntriesTotal  prometheus.Gauge
	fileSizeBytes     prometheus.Gauge
}

// NewMetrics creates and registers the store metrics on the default
// registry. Register at most once per process.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates the store metrics on a specific registerer.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mimir_store_operations_total",
				Help: "Total number of store operations",
			},
			[]string{"operation", "status"},
		),

		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mimir_store_operation_duration_seconds",
				Help:    "Store operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		fileEntriesTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mimir_store_file_entries",
				Help: "Number of entries in the save file touched by the most recent operation",
			},
		),

		fileSizeBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "mimir_store_file_size_bytes",
				Help: "Size in bytes of the save file touched by the most recent operation",
			},
		),
	}
}

// RecordOperation records one store operation outcome.
func (m *Metrics) RecordOperation(operation string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.operationsTotal.WithLabelValues(operation, status).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateFileStats records the entry count and encoded size of the save file
// an operation just read or wrote.
func (m *Metrics) UpdateFileStats(entries, sizeBytes int) {
	if m == nil {
		return
	}
	m.fileEntriesTotal.Set(float64(entries))
	m.fileSizeBytes.Set(float64(sizeBytes))
}
