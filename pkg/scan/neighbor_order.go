package scan

import (
	"sort"
	"sync/atomic"

	"github.com/dd0wney/cluso-scan/pkg/graph"
	"github.com/dd0wney/cluso-scan/pkg/parallel"
)

// NeighborSim is one entry of a vertex's neighbor order.
type NeighborSim struct {
	Neighbor   uint32
	Similarity float32
}

// NeighborOrder stores, for each vertex, its incident edges sorted by
// descending similarity with ties broken by ascending neighbor ID. The
// layout is CSR-shaped: vertex v's run is pairs[offsets[v]:offsets[v+1]].
// Immutable after construction.
type NeighborOrder struct {
	offsets []uint64
	pairs   []NeighborSim
}

// newNeighborOrder groups the similarity sequence by source vertex and sorts
// each vertex's run. Returns ErrSimilarityNaN if any similarity is NaN.
func newNeighborOrder(g *graph.Graph, similarities []EdgeSimilarity) (*NeighborOrder, error) {
	n := g.NumVertices()
	offsets := make([]uint64, n+1)
	parallel.For(n+1, func(i int) {
		if i == n {
			offsets[i] = g.NumHalfEdges()
		} else {
			offsets[i] = g.Offset(uint32(i))
		}
	})

	pairs := make([]NeighborSim, len(similarities))
	cursors := make([]atomic.Uint32, n)
	var sawNaN atomic.Bool
	parallel.For(len(similarities), func(i int) {
		es := similarities[i]
		if isNaN32(es.Similarity) {
			sawNaN.Store(true)
			return
		}
		slot := offsets[es.Source] + uint64(cursors[es.Source].Add(1)-1)
		pairs[slot] = NeighborSim{Neighbor: es.Neighbor, Similarity: es.Similarity}
	})
	if sawNaN.Load() {
		return nil, ErrSimilarityNaN
	}

	no := &NeighborOrder{offsets: offsets, pairs: pairs}
	parallel.For(n, func(i int) {
		run := no.Edges(uint32(i))
		sort.Slice(run, func(a, b int) bool {
			if run[a].Similarity != run[b].Similarity {
				return run[a].Similarity > run[b].Similarity
			}
			return run[a].Neighbor < run[b].Neighbor
		})
	})
	return no, nil
}

// NumVertices returns the number of vertices indexed.
func (no *NeighborOrder) NumVertices() int {
	return len(no.offsets) - 1
}

// Degree returns the number of incident edges of v.
func (no *NeighborOrder) Degree(v uint32) uint32 {
	return uint32(no.offsets[v+1] - no.offsets[v])
}

// Edges returns v's incident edges sorted by descending similarity, ties by
// ascending neighbor ID. The slice aliases the index and must not be
// modified by callers.
func (no *NeighborOrder) Edges(v uint32) []NeighborSim {
	return no.pairs[no.offsets[v]:no.offsets[v+1]]
}

// CountAtLeast returns how many of v's incident edges have similarity >=
// epsilon, by binary search over the descending run.
func (no *NeighborOrder) CountAtLeast(v uint32, epsilon float32) uint32 {
	run := no.Edges(v)
	return uint32(sort.Search(len(run), func(i int) bool {
		return run[i].Similarity < epsilon
	}))
}
