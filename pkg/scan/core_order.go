package scan

import (
	"sort"
	"sync/atomic"

	"github.com/dd0wney/cluso-scan/pkg/parallel"
)

// CoreThreshold pairs a vertex with the similarity of its k-th best incident
// edge for some k; within a mu-bucket, Threshold >= epsilon means the vertex
// is a core at (mu, epsilon).
type CoreThreshold struct {
	Vertex    uint32
	Threshold float32
}

// CoreOrder answers "which vertices are cores at (mu, epsilon)?" in time
// proportional to the answer. Bucket mu holds every vertex v with
// deg(v) >= mu-1, carrying the similarity of v's (mu-1)-th best incident
// edge, sorted descending; the cores at (mu, epsilon) are the bucket prefix
// with Threshold >= epsilon. A vertex counts itself among its mu
// closed-neighbors, hence mu-1 rather than mu. Immutable after construction.
type CoreOrder struct {
	buckets [][]CoreThreshold // indexed by mu; entries 0 and 1 unused
}

// newCoreOrder derives the core order from the neighbor order.
func newCoreOrder(no *NeighborOrder) *CoreOrder {
	n := no.NumVertices()
	maxDegree := uint32(0)
	for v := 0; v < n; v++ {
		if d := no.Degree(uint32(v)); d > maxDegree {
			maxDegree = d
		}
	}
	maxMu := uint64(maxDegree) + 1

	// Bucket mu receives every vertex with deg >= mu-1: sizes come from a
	// degree histogram suffix-summed from the top.
	histogram := make([]uint64, maxDegree+2)
	for v := 0; v < n; v++ {
		histogram[no.Degree(uint32(v))]++
	}
	buckets := make([][]CoreThreshold, maxMu+1)
	atLeast := uint64(0)
	for d := int(maxDegree); d >= 1; d-- {
		atLeast += histogram[d]
		buckets[d+1] = make([]CoreThreshold, atLeast)
	}

	cursors := make([]atomic.Uint64, maxMu+1)
	parallel.For(n, func(i int) {
		v := uint32(i)
		run := no.Edges(v)
		for k, pair := range run {
			mu := uint64(k) + 2
			slot := cursors[mu].Add(1) - 1
			buckets[mu][slot] = CoreThreshold{Vertex: v, Threshold: pair.Similarity}
		}
	})

	parallel.For(len(buckets), func(mu int) {
		bucket := buckets[mu]
		sort.Slice(bucket, func(a, b int) bool {
			if bucket[a].Threshold != bucket[b].Threshold {
				return bucket[a].Threshold > bucket[b].Threshold
			}
			return bucket[a].Vertex < bucket[b].Vertex
		})
	})
	return &CoreOrder{buckets: buckets}
}

// MaxMu returns the largest mu for which any vertex can be a core.
func (co *CoreOrder) MaxMu() uint64 {
	return uint64(len(co.buckets)) - 1
}

// CoresAt returns the vertices that are cores at (mu, epsilon): the prefix
// of bucket mu whose thresholds are >= epsilon. The slice aliases the index
// and must not be modified.
func (co *CoreOrder) CoresAt(mu uint64, epsilon float32) []CoreThreshold {
	if mu >= uint64(len(co.buckets)) {
		return nil
	}
	bucket := co.buckets[mu]
	end := sort.Search(len(bucket), func(i int) bool {
		return bucket[i].Threshold < epsilon
	})
	return bucket[:end]
}
