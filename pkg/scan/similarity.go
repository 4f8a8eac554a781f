package scan

import (
	"math"
	"sync/atomic"

	"github.com/dd0wney/cluso-scan/pkg/graph"
	"github.com/dd0wney/cluso-scan/pkg/parallel"
)

// SimilarityMeasure computes the structural similarity of every adjacent
// vertex pair. AllEdges returns one EdgeSimilarity per directed half-edge
// (2m entries); the two half-edges of an undirected edge carry the same
// value. The graph's adjacency lists must be sorted by ascending neighbor ID.
type SimilarityMeasure interface {
	AllEdges(g *graph.Graph) ([]EdgeSimilarity, error)
	Name() string
}

// CosineSimilarity is the exact structural cosine similarity: the size of
// the intersection of the closed neighborhoods of u and v divided by the
// geometric mean of the closed neighborhood sizes.
type CosineSimilarity struct{}

// JaccardSimilarity is the exact Jaccard similarity of closed neighborhoods:
// intersection size over union size.
type JaccardSimilarity struct{}

func (CosineSimilarity) Name() string  { return "cosine" }
func (JaccardSimilarity) Name() string { return "jaccard" }

// cosineFromCounts computes the closed-neighborhood cosine similarity from
// the open degrees and the open shared-neighbor count. The +2 and +1 adjust
// open values to closed neighborhoods: u and v are in each other's closed
// neighborhoods, and each vertex is in its own.
func cosineFromCounts(degU, degV, shared uint32) float32 {
	// Divide in float64 so a full-overlap edge rounds to exactly 1.0 rather
	// than a hair above it.
	return float32(float64(shared+2) /
		(math.Sqrt(float64(degU+1)) * math.Sqrt(float64(degV+1))))
}

// jaccardFromCounts computes the closed-neighborhood Jaccard similarity.
// The closed union size is degU + degV - shared: the +1s for u and v cancel
// against their membership in each other's open neighborhoods.
func jaccardFromCounts(degU, degV, shared uint32) float32 {
	return float32(shared+2) / float32(degU+degV-shared)
}

// AllEdges computes exact cosine similarities for every half-edge.
func (CosineSimilarity) AllEdges(g *graph.Graph) ([]EdgeSimilarity, error) {
	return allEdgeNeighborhoodSimilarities(g, cosineFromCounts), nil
}

// AllEdges computes exact Jaccard similarities for every half-edge.
func (JaccardSimilarity) AllEdges(g *graph.Graph) ([]EdgeSimilarity, error) {
	return allEdgeNeighborhoodSimilarities(g, jaccardFromCounts), nil
}

// countSharedNeighbors runs the directed triangle-counting pass over dg and
// returns one atomic counter per directed edge holding the number of open
// neighbors shared by that edge's endpoints in g.
//
// For each directed wedge u -> v, u -> w with v -> w also present, the
// triangle (u, v, w) bumps the counters of all three directed edges. The
// positional output of the sorted-list intersection locates the counter
// slots of u->w and v->w directly.
//
// skipSource skips a source vertex's whole wedge loop (its out-edges all
// join higher-ranked vertices); skipShared suppresses the (v, w) counter
// bump. The approximate variants use these to avoid counting for edges
// whose similarity will be estimated by sketching; those counters are left
// incomplete and must not be read. Both may be nil.
func countSharedNeighbors(dg *directedGraph, skipSource func(u uint32) bool,
	skipShared func(v, w uint32) bool) []atomic.Uint32 {
	counters := make([]atomic.Uint32, dg.numEdges())
	n := len(dg.offsets) - 1
	parallel.For(n, func(i int) {
		u := uint32(i)
		if skipSource != nil && skipSource(u) {
			return
		}
		outU := dg.outNeighbors(u)
		baseU := dg.counterOffset(u)
		for j, v := range outU {
			outV := dg.outNeighbors(v)
			baseV := dg.counterOffset(v)
			matches := intersectWithIndex(outU, outV, func(w, posU, posV uint32) {
				counters[baseU+uint64(posU)].Add(1)
				if skipShared == nil || !skipShared(v, w) {
					counters[baseV+uint64(posV)].Add(1)
				}
			})
			counters[baseU+uint64(j)].Add(matches)
		}
	})
	return counters
}

// allEdgeNeighborhoodSimilarities computes a similarity for every half-edge
// of g using simFromCounts, a symmetric function of the two endpoint degrees
// and their shared-neighbor count.
func allEdgeNeighborhoodSimilarities(g *graph.Graph,
	simFromCounts func(degU, degV, shared uint32) float32) []EdgeSimilarity {
	dg := directByDegree(g)
	counters := countSharedNeighbors(dg, nil, nil)

	similarities := make([]EdgeSimilarity, g.NumHalfEdges())
	n := g.NumVertices()
	parallel.For(n, func(i int) {
		v := uint32(i)
		degV := g.Degree(v)
		base := dg.counterOffset(v)
		for j, u := range dg.outNeighbors(v) {
			ci := base + uint64(j)
			shared := counters[ci].Load()
			sim := simFromCounts(degV, g.Degree(u), shared)
			similarities[2*ci] = EdgeSimilarity{Source: v, Neighbor: u, Similarity: sim}
			similarities[2*ci+1] = EdgeSimilarity{Source: u, Neighbor: v, Similarity: sim}
		}
	})
	return similarities
}
