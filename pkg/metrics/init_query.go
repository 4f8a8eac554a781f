package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQueryMetrics() {
	r.ClusterQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan_cluster_queries_total",
			Help: "Total number of cluster queries executed",
		},
		[]string{"status"},
	)

	r.ClusterQueryDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scan_cluster_query_duration_seconds",
			Help:    "Cluster query duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)

	r.ClusterCoresFound = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scan_cluster_cores_found",
			Help:    "Core vertices found per cluster query",
			Buckets: []float64{0, 10, 100, 1000, 10000, 100000, 1000000},
		},
	)

	r.ClusterClustersFound = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scan_cluster_clusters_found",
			Help:    "Clusters found per cluster query",
			Buckets: []float64{0, 1, 10, 100, 1000, 10000, 100000},
		},
	)

	r.ClusterUnclustered = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scan_cluster_unclustered_vertices",
			Help:    "Vertices left unclustered per cluster query",
			Buckets: []float64{0, 10, 100, 1000, 10000, 100000, 1000000},
		},
	)
}
