package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service counters. A nil *Metrics is a valid no-op sink
type Metrics struct {
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	upstreamFetches    *prometheus.CounterVec
	declinedFetches    prometheus.Counter
	syntheticSnapshots prometheus.Counter
}

// NewMetrics registers the service counters on the default registry
func NewMetrics() *Metrics {
	return &Metrics{
		cacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "snapshot_cache_hits_total",
				Help: "Total number of day-snapshot cache hits",
			},
		),

		cacheMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "snapshot_cache_misses_total",
				Help: "Total number of day-snapshot cache misses",
			},
		),

		upstreamFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_fetches_total",
				Help: "Total number of upstream rate fetches",
			},
			[]string{"endpoint"},
		),

		declinedFetches: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "upstream_declined_fetches_total",
				Help: "Total number of upstream fetches declined by the provider",
			},
		),

		syntheticSnapshots: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "synthetic_snapshots_total",
				Help: "Total number of synthesized fallback snapshots",
			},
		),
	}
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}

	m.cacheHits.Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}

	m.cacheMisses.Inc()
}

func (m *Metrics) LatestFetch() {
	if m == nil {
		return
	}

	m.upstreamFetches.WithLabelValues("latest").Inc()
}

func (m *Metrics) HistoricFetch() {
	if m == nil {
		return
	}

	m.upstreamFetches.WithLabelValues("historic").Inc()
}

func (m *Metrics) DeclinedFetch() {
	if m == nil {
		return
	}

	m.declinedFetches.Inc()
}

func (m *Metrics) SyntheticSnapshot() {
	if m == nil {
		return
	}

	m.syntheticSnapshots.Inc()
}
