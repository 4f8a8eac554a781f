package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the clustering engine
type Registry struct {
	// Index build metrics
	IndexBuildsTotal      *prometheus.CounterVec
	IndexBuildDuration    *prometheus.HistogramVec
	EdgesScoredTotal      *prometheus.CounterVec
	FingerprintedVertices prometheus.Gauge

	// Cluster query metrics
	ClusterQueriesTotal  *prometheus.CounterVec
	ClusterQueryDuration prometheus.Histogram
	ClusterCoresFound    prometheus.Histogram
	ClusterClustersFound prometheus.Histogram
	ClusterUnclustered   prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a Registry with all metrics registered against a
// fresh prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initBuildMetrics()
	r.initQueryMetrics()
	return r
}

// PrometheusRegistry returns the underlying registry for scraping.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
