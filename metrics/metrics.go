// ABOUTME: Prometheus counters for one lifelens run
// ABOUTME: Written to a node-exporter textfile when the run finishes

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the run counters on a private registry
type Metrics struct {
	registry *prometheus.Registry

	RecordsLoaded  *prometheus.CounterVec
	RecordsPrinted prometheus.Counter
	DecodeErrors   prometheus.Counter
}

// New creates and registers the counters
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RecordsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lifelens_records_loaded_total",
			Help: "Unreachability records decoded, by log format.",
		}, []string{"format"}),
		RecordsPrinted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lifelens_records_printed_total",
			Help: "Unreachability records written to the output.",
		}),
		DecodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lifelens_decode_errors_total",
			Help: "Logs that failed to decode.",
		}),
	}
	m.registry.MustRegister(m.RecordsLoaded, m.RecordsPrinted, m.DecodeErrors)
	return m
}

// Gatherer exposes the private registry
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the current values in the text exposition format
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
