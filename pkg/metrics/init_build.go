package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initBuildMetrics() {
	r.IndexBuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan_index_builds_total",
			Help: "Total number of index builds",
		},
		[]string{"similarity", "status"},
	)

	r.IndexBuildDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scan_index_build_duration_seconds",
			Help:    "Index build duration in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0, 600.0},
		},
		[]string{"similarity"},
	)

	r.EdgesScoredTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan_edges_scored_total",
			Help: "Total number of half-edges assigned a similarity score",
		},
		[]string{"similarity"},
	)

	r.FingerprintedVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "scan_fingerprinted_vertices",
			Help: "Vertices sketched during the most recent approximate build",
		},
	)
}
