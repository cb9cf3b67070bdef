package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dai_tracker"

// Metrics holds the Prometheus collectors of the tracker
type Metrics struct {
	FetchTotal      *prometheus.CounterVec
	FetchDuration   prometheus.Histogram
	FetchStatus     *prometheus.GaugeVec
	TransfersLoaded prometheus.Gauge
	PageViews       *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg. Pass prometheus.DefaultRegisterer
// to expose them on the default /metrics handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_total",
				Help:      "Number of transfer fetches by outcome",
			},
			[]string{"outcome"},
		),
		FetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Duration of the transfers query in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		FetchStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "fetch_status",
				Help:      "1 for the current fetch status, 0 otherwise",
			},
			[]string{"status"},
		),
		TransfersLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "transfers_loaded",
				Help:      "Number of transfers held in memory",
			},
		),
		PageViews: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "page_views_total",
				Help:      "Rendered views by format and fetch status",
			},
			[]string{"format", "status"},
		),
	}
}

// SetStatus marks status as the current fetch status
func (m *Metrics) SetStatus(status string, all ...string) {
	for _, s := range all {
		m.FetchStatus.WithLabelValues(s).Set(0)
	}
	m.FetchStatus.WithLabelValues(status).Set(1)
}
