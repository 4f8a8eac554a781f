package metrics

import "time"

// RecordIndexBuild records a completed or failed index build. All record
// methods are nil-safe so library code can carry an optional registry.
func (r *Registry) RecordIndexBuild(similarity, status string, duration time.Duration, edgesScored uint64) {
	if r == nil {
		return
	}
	r.IndexBuildsTotal.WithLabelValues(similarity, status).Inc()
	if status == "ok" {
		r.IndexBuildDuration.WithLabelValues(similarity).Observe(duration.Seconds())
		r.EdgesScoredTotal.WithLabelValues(similarity).Add(float64(edgesScored))
	}
}

// RecordFingerprintedVertices records how many vertices an approximate build
// sketched.
func (r *Registry) RecordFingerprintedVertices(count int) {
	if r == nil {
		return
	}
	r.FingerprintedVertices.Set(float64(count))
}

// RecordClusterQuery records a cluster query execution.
func (r *Registry) RecordClusterQuery(status string, duration time.Duration, cores, clusters, unclustered int) {
	if r == nil {
		return
	}
	r.ClusterQueriesTotal.WithLabelValues(status).Inc()
	if status == "ok" {
		r.ClusterQueryDuration.Observe(duration.Seconds())
		r.ClusterCoresFound.Observe(float64(cores))
		r.ClusterClustersFound.Observe(float64(clusters))
		r.ClusterUnclustered.Observe(float64(unclustered))
	}
}
