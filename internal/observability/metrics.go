package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the dashboard service.
type Metrics struct {
	DatasetRows         prometheus.Gauge
	DatasetLoadDuration prometheus.Gauge

	RenderPasses       prometheus.Counter
	RenderDuration     prometheus.Histogram
	RenderCacheLookups *prometheus.CounterVec // labels: result={hit,miss}

	HTTPRequests *prometheus.CounterVec // labels: route, status
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DatasetRows,
		m.DatasetLoadDuration,
		m.RenderPasses,
		m.RenderDuration,
		m.RenderCacheLookups,
		m.HTTPRequests,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "meteo_dashboard",
			Name:      "dataset_rows",
			Help:      "Number of observation rows loaded at startup.",
		}),
		DatasetLoadDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "meteo_dashboard",
			Name:      "dataset_load_duration_seconds",
			Help:      "Wall time spent loading and indexing the data file.",
		}),
		RenderPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "meteo_dashboard",
			Name:      "render_passes_total",
			Help:      "Total render passes (filter view + plot specs built).",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "meteo_dashboard",
			Name:      "render_duration_seconds",
			Help:      "Duration of a complete render pass.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		RenderCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meteo_dashboard",
			Name:      "render_cache_lookups_total",
			Help:      "Render cache lookups by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meteo_dashboard",
			Name:      "http_requests_total",
			Help:      "API requests by route and status code.",
		}, []string{"route", "status"}),
	}
}
