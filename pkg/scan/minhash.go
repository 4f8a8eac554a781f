package scan

import (
	"github.com/dd0wney/cluso-scan/pkg/graph"
	"github.com/dd0wney/cluso-scan/pkg/parallel"
)

// ApproxJaccardSimilarity estimates Jaccard similarity with MinHash for
// edges between high-degree vertices and computes it exactly everywhere
// else. Increasing NumSamples increases accuracy. With a fixed Seed the
// output is deterministic.
type ApproxJaccardSimilarity struct {
	NumSamples uint32
	Seed       uint64
}

func (ApproxJaccardSimilarity) Name() string { return "approx_jaccard" }

// AllEdges computes similarities for every half-edge, sketching high-degree
// pairs and falling back to exact triangle counting elsewhere.
func (s ApproxJaccardSimilarity) AllEdges(g *graph.Graph) ([]EdgeSimilarity, error) {
	if s.NumSamples == 0 {
		return nil, buildError(s.Name(), ErrInvalidSamples)
	}
	numSamples := uint64(s.NumSamples)
	threshold := degreeThreshold(s.NumSamples)
	n := g.NumVertices()
	randomOffset := parallel.Hash64(s.Seed)

	// MinHash fingerprints over closed neighborhoods, for high-degree
	// vertices with at least one high-degree neighbor. Sample slot i of
	// vertex v is the minimum keyed hash h_i(x) over x in N[v].
	fingerprints := make([][]uint64, n)
	parallel.For(n, func(i int) {
		v := uint32(i)
		if !needsSketch(g, v, threshold) {
			return
		}
		fp := make([]uint64, numSamples)
		for sample := uint64(0); sample < numSamples; sample++ {
			minHash := parallel.Hash64_2(randomOffset + numSamples*uint64(v) + sample)
			for _, u := range g.Neighbors(v) {
				h := parallel.Hash64_2(randomOffset + numSamples*uint64(u) + sample)
				if h < minHash {
					minHash = h
				}
			}
			fp[sample] = minHash
		}
		fingerprints[v] = fp
	})

	skipSource := func(u uint32) bool { return g.Degree(u) >= threshold }
	skipShared := func(v, w uint32) bool {
		return g.Degree(v) >= threshold && g.Degree(w) >= threshold
	}
	dg := directByDegree(g)
	counters := countSharedNeighbors(dg, skipSource, skipShared)

	similarities := make([]EdgeSimilarity, g.NumHalfEdges())
	parallel.For(n, func(i int) {
		v := uint32(i)
		degV := g.Degree(v)
		vHigh := degV >= threshold
		base := dg.counterOffset(v)
		fpV := fingerprints[v]
		for j, u := range dg.outNeighbors(v) {
			ci := base + uint64(j)
			var sim float32
			if vHigh {
				fpU := fingerprints[u]
				matches := 0
				for k := range fpV {
					if fpV[k] == fpU[k] {
						matches++
					}
				}
				sim = clampSimilarity(float32(matches) / float32(s.NumSamples))
			} else {
				sim = jaccardFromCounts(degV, g.Degree(u), counters[ci].Load())
			}
			similarities[2*ci] = EdgeSimilarity{Source: v, Neighbor: u, Similarity: sim}
			similarities[2*ci+1] = EdgeSimilarity{Source: u, Neighbor: v, Similarity: sim}
		}
	})
	return similarities, nil
}
