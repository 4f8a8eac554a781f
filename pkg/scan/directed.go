package scan

import (
	"github.com/dd0wney/cluso-scan/pkg/graph"
	"github.com/dd0wney/cluso-scan/pkg/parallel"
)

// directedGraph is the degree-oriented copy of the input graph used during
// triangle counting: every undirected edge points from its lower-ranked
// endpoint to its higher-ranked endpoint, where rank is (degree, vertex ID).
// This bounds each out-degree by sqrt(2m). Out-neighbor lists stay sorted
// ascending because they are subsequences of the input adjacency lists.
//
// offsets doubles as the per-edge counter offset table: the directed edge
// (v, k-th out-neighbor) owns counter slot offsets[v]+k.
type directedGraph struct {
	offsets []uint64
	edges   []uint32
}

// rankBelow reports whether u is ranked strictly below v in degree order,
// breaking degree ties by vertex ID.
func rankBelow(g *graph.Graph, u, v uint32) bool {
	du, dv := g.Degree(u), g.Degree(v)
	if du != dv {
		return du < dv
	}
	return u < v
}

// directByDegree builds the degree-oriented directed copy of g.
func directByDegree(g *graph.Graph) *directedGraph {
	n := g.NumVertices()
	offsets := make([]uint64, n+1)
	parallel.For(n, func(i int) {
		v := uint32(i)
		var out uint64
		for _, u := range g.Neighbors(v) {
			if rankBelow(g, v, u) {
				out++
			}
		}
		offsets[i] = out
	})
	total := parallel.ScanAdd(offsets)

	edges := make([]uint32, total)
	parallel.For(n, func(i int) {
		v := uint32(i)
		slot := offsets[i]
		for _, u := range g.Neighbors(v) {
			if rankBelow(g, v, u) {
				edges[slot] = u
				slot++
			}
		}
	})
	return &directedGraph{offsets: offsets, edges: edges}
}

// outNeighbors returns v's directed out-neighbors, sorted ascending.
func (dg *directedGraph) outNeighbors(v uint32) []uint32 {
	return dg.edges[dg.offsets[v]:dg.offsets[v+1]]
}

// counterOffset returns the counter slot of v's first out-edge.
func (dg *directedGraph) counterOffset(v uint32) uint64 {
	return dg.offsets[v]
}

// numEdges returns the number of directed edges (= undirected edges of g).
func (dg *directedGraph) numEdges() uint64 {
	return uint64(len(dg.edges))
}
