// Package metrics implements the DirectoryMetrics port with Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/storefinder/internal/ports/secondary"
)

// Metrics provides observability for record loads and filter evaluation.
type Metrics struct {
	// Loads by outcome: "success", "failure"
	Loads *prometheus.CounterVec

	// Size of the record set after the most recent load
	Records prometheus.Gauge

	LoadLatency prometheus.Histogram

	// Filter evaluations and their match counts
	Filters       prometheus.Counter
	FilterMatches prometheus.Histogram
	FilterLatency prometheus.Histogram

	gatherer prometheus.Gatherer
}

// Ensure Metrics implements the interface
var _ secondary.DirectoryMetrics = (*Metrics)(nil)

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return newMetrics(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewWithRegistry registers on reg instead of the default registry.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	return newMetrics(reg, reg)
}

func newMetrics(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Loads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefinder_loads_total",
			Help: "Total record-set loads by outcome",
		}, []string{"outcome"}),

		Records: factory.NewGauge(prometheus.GaugeOpts{
			Name: "storefinder_records",
			Help: "Number of store records currently loaded",
		}),

		LoadLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefinder_load_duration_seconds",
			Help:    "Duration of record-set loads including fetch and decode",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		Filters: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefinder_filter_evaluations_total",
			Help: "Total filter evaluations",
		}),

		FilterMatches: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefinder_filter_matches",
			Help:    "Number of records matched per filter evaluation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),

		FilterLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "storefinder_filter_duration_seconds",
			Help:    "Duration of one filter evaluation",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),

		gatherer: gatherer,
	}
}

// ObserveLoad records one record-set load.
func (m *Metrics) ObserveLoad(outcome string, records int, d time.Duration) {
	if m == nil {
		return
	}
	m.Loads.WithLabelValues(outcome).Inc()
	m.Records.Set(float64(records))
	m.LoadLatency.Observe(d.Seconds())
}

// ObserveFilter records one filter evaluation.
func (m *Metrics) ObserveFilter(matches int, d time.Duration) {
	if m == nil {
		return
	}
	m.Filters.Inc()
	m.FilterMatches.Observe(float64(matches))
	m.FilterLatency.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
