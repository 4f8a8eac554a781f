package scan

import (
	"github.com/dd0wney/cluso-scan/pkg/graph"
	"github.com/dd0wney/cluso-scan/pkg/parallel"
)

// needsSketch reports whether v gets a fingerprint under an approximate
// measure: v must be high-degree and so must at least one neighbor.
// Edges with a low-degree endpoint are computed exactly, so a high-degree
// vertex surrounded by low-degree neighbors never needs a sketch.
func needsSketch(g *graph.Graph, v uint32, threshold uint32) bool {
	if g.Degree(v) < threshold {
		return false
	}
	for _, u := range g.Neighbors(v) {
		if g.Degree(u) >= threshold {
			return true
		}
	}
	return false
}

// sketchedVertexCount reports how many vertices the given measure would
// fingerprint on g, and whether the measure sketches at all.
func sketchedVertexCount(g *graph.Graph, measure SimilarityMeasure) (int, bool) {
	var threshold uint32
	switch m := measure.(type) {
	case ApproxCosineSimilarity:
		threshold = degreeThreshold(m.NumSamples)
	case ApproxJaccardSimilarity:
		threshold = degreeThreshold(m.NumSamples)
	default:
		return 0, false
	}
	count := parallel.ReduceSum(g.NumVertices(), func(i int) uint64 {
		if needsSketch(g, uint32(i), threshold) {
			return 1
		}
		return 0
	})
	return int(count), true
}
