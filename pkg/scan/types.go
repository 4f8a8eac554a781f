// Package scan implements index-based structural graph clustering (SCAN).
// An Index is built once per graph and similarity measure; the graph can
// then be clustered repeatedly under different (mu, epsilon) parameters
// without recomputing similarities.
package scan

import "math"

// EdgeSimilarity is the structural similarity of one directed half-edge.
// The (Source, Neighbor) and (Neighbor, Source) entries carry the same
// Similarity value.
type EdgeSimilarity struct {
	Source     uint32
	Neighbor   uint32
	Similarity float32
}

// Unclustered marks a vertex that belongs to no cluster.
const Unclustered = ^uint32(0)

// Clustering maps each vertex to its cluster ID, or Unclustered. Cluster IDs
// lie in [0, NumVertices) but are not necessarily contiguous.
type Clustering []uint32

// ClusteringStats summarizes a Clustering.
type ClusteringStats struct {
	Clusters    int // number of distinct clusters
	Largest     int // size of the largest cluster
	Clustered   int // vertices assigned to some cluster
	Unclustered int // vertices left unassigned
}

// Stats computes summary statistics for the clustering.
func (c Clustering) Stats() ClusteringStats {
	sizes := make(map[uint32]int)
	stats := ClusteringStats{}
	for _, id := range c {
		if id == Unclustered {
			stats.Unclustered++
			continue
		}
		stats.Clustered++
		sizes[id]++
	}
	stats.Clusters = len(sizes)
	for _, size := range sizes {
		if size > stats.Largest {
			stats.Largest = size
		}
	}
	return stats
}

// clampSimilarity bounds approximate similarity estimates to [-1, 1].
// Sampling noise can push estimates slightly outside the true range.
func clampSimilarity(s float32) float32 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}

// isNaN32 reports whether f is an IEEE 754 NaN.
func isNaN32(f float32) bool {
	return math.IsNaN(float64(f))
}
