// Package prometheus exports dataset loader metrics.
package prometheus

import (
	"covid-dashboard-service/internal/dataset/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type LoaderMetrics struct {
	fetches       *prometheus.CounterVec
	cacheHits     prometheus.Counter
	records       prometheus.Gauge
	fetchDuration prometheus.Histogram
}

var _ ports.LoaderMetricsPort = (*LoaderMetrics)(nil)

// NewLoaderMetrics registers the loader collectors on reg.
func NewLoaderMetrics(reg prometheus.Registerer) *LoaderMetrics {
	f := promauto.With(reg)
	return &LoaderMetrics{
		fetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "covid_dashboard",
			Name:      "dataset_fetches_total",
			Help:      "Dataset fetches by result.",
		}, []string{"result"}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: "covid_dashboard",
			Name:      "dataset_cache_hits_total",
			Help:      "Loads served from the dataset cache.",
		}),
		records: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "covid_dashboard",
			Name:      "dataset_records",
			Help:      "Records in the most recently fetched dataset.",
		}),
		fetchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "covid_dashboard",
			Name:      "dataset_fetch_duration_seconds",
			Help:      "Time spent downloading and parsing the dataset.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
	}
}

func (m *LoaderMetrics) CacheHit() {
	m.cacheHits.Inc()
}

func (m *LoaderMetrics) FetchSucceeded(records int, seconds float64) {
	m.fetches.WithLabelValues("success").Inc()
	m.records.Set(float64(records))
	m.fetchDuration.Observe(seconds)
}

func (m *LoaderMetrics) FetchFailed() {
	m.fetches.WithLabelValues("error").Inc()
}
