package scan

import (
	"math"
	"math/bits"
	"sync/atomic"

	"github.com/dd0wney/cluso-scan/pkg/graph"
	"github.com/dd0wney/cluso-scan/pkg/parallel"
)

// ApproxCosineSimilarity estimates cosine similarity with SimHash for edges
// between high-degree vertices and computes it exactly everywhere else.
// Increasing NumSamples increases accuracy. With a fixed Seed the output is
// deterministic.
//
// A vertex's closed neighborhood is treated as an n-dimensional 0/1 vector;
// the angle between two such vectors is estimated by projecting them onto
// NumSamples random hyperplanes and counting sign disagreements.
type ApproxCosineSimilarity struct {
	NumSamples uint32
	Seed       uint64
}

func (ApproxCosineSimilarity) Name() string { return "approx_cosine" }

// bitsPerWord is the fingerprint word width.
const bitsPerWord = 64

// degreeThreshold is the degree at which sketching beats exact counting.
// Below 4*numSamples, the exact triangle count is cheaper than building and
// comparing fingerprints.
func degreeThreshold(numSamples uint32) uint32 {
	return 4 * numSamples
}

// AllEdges computes similarities for every half-edge, sketching high-degree
// pairs and falling back to exact triangle counting elsewhere.
func (s ApproxCosineSimilarity) AllEdges(g *graph.Graph) ([]EdgeSimilarity, error) {
	if s.NumSamples == 0 {
		return nil, buildError(s.Name(), ErrInvalidSamples)
	}
	numSamples := s.NumSamples
	threshold := degreeThreshold(numSamples)
	n := g.NumVertices()

	// A vertex is fingerprinted iff it and at least one neighbor are
	// high-degree. Normals are needed for fingerprinted vertices and all
	// their neighbors.
	needsFingerprint := make([]bool, n)
	needsNormals := make([]uint32, n)
	parallel.For(n, func(i int) {
		v := uint32(i)
		if !needsSketch(g, v, threshold) {
			return
		}
		needsFingerprint[v] = true
		atomic.StoreUint32(&needsNormals[v], 1)
		for _, u := range g.Neighbors(v) {
			atomic.StoreUint32(&needsNormals[u], 1)
		}
	})

	// Repurpose needsNormals as each vertex's index into the normals table.
	numNormalVertices := parallel.ScanAdd(needsNormals)
	normals := parallel.RandomNormals(int(numNormalVertices)*int(numSamples), s.Seed)

	numWords := int((numSamples + bitsPerWord - 1) / bitsPerWord)
	fingerprints := make([][]uint64, n)
	parallel.For(n, func(i int) {
		v := uint32(i)
		if !needsFingerprint[v] {
			return
		}
		// Dot products with each hyperplane, accumulated sequentially per
		// vertex so the result does not depend on scheduling.
		products := make([]float32, numSamples)
		copy(products, vertexNormals(normals, needsNormals[v], numSamples))
		for _, u := range g.Neighbors(v) {
			uNormals := vertexNormals(normals, needsNormals[u], numSamples)
			for k := range products {
				products[k] += uNormals[k]
			}
		}
		fp := make([]uint64, numWords)
		for k, p := range products {
			if p >= 0 {
				fp[k/bitsPerWord] |= 1 << (uint(k) % bitsPerWord)
			}
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
				// Directed edges point to equal-or-higher degree, so u is
				// high too and both endpoints are fingerprinted.
				fpU := fingerprints[u]
				disagreements := 0
				for w := range fpV {
					disagreements += bits.OnesCount64(fpV[w] ^ fpU[w])
				}
				angle := float64(disagreements) * math.Pi / float64(numSamples)
				sim = clampSimilarity(float32(math.Cos(angle)))
			} else {
				sim = cosineFromCounts(degV, g.Degree(u), counters[ci].Load())
			}
			similarities[2*ci] = EdgeSimilarity{Source: v, Neighbor: u, Similarity: sim}
			similarities[2*ci+1] = EdgeSimilarity{Source: u, Neighbor: v, Similarity: sim}
		}
	})
	return similarities, nil
}

// vertexNormals returns the slice of hyperplane normals assigned to the
// vertex with normal-table index idx.
func vertexNormals(normals []float32, idx, numSamples uint32) []float32 {
	off := uint64(idx) * uint64(numSamples)
	return normals[off : off+uint64(numSamples)]
}
