// Package graph provides the immutable, undirected, compressed-sparse-row
// graph that the SCAN index engine consumes. Adjacency lists are stored
// sorted by ascending neighbor ID; the engine depends on that ordering.
package graph

// Graph is an undirected graph in compressed-sparse-row form. offsets has
// NumVertices()+1 entries; edges holds every directed half-edge, so an
// undirected edge {u,v} appears once under u and once under v.
type Graph struct {
	offsets []uint64
	edges   []uint32
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int {
	return len(g.offsets) - 1
}

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() uint64 {
	return uint64(len(g.edges)) / 2
}

// NumHalfEdges returns the number of directed half-edges (2x NumEdges).
func (g *Graph) NumHalfEdges() uint64 {
	return uint64(len(g.edges))
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v uint32) uint32 {
	return uint32(g.offsets[v+1] - g.offsets[v])
}

// Neighbors returns v's adjacency list, sorted ascending. The returned slice
// aliases the graph's storage and must not be modified.
func (g *Graph) Neighbors(v uint32) []uint32 {
	return g.edges[g.offsets[v]:g.offsets[v+1]]
}

// Offset returns the index of v's first half-edge in the flat edge array;
// v's half-edges occupy [Offset(v), Offset(v+1)).
func (g *Graph) Offset(v uint32) uint64 {
	return g.offsets[v]
}

// Validate checks the structural invariants the SCAN engine relies on:
// adjacency sorted ascending, no self-loops, no duplicate edges, and every
// neighbor ID within range.
func (g *Graph) Validate() error {
	n := uint32(g.NumVertices())
	for v := uint32(0); v < n; v++ {
		nghs := g.Neighbors(v)
		for i, u := range nghs {
			if u >= n {
				return newError("validate").Vertex(v).Cause(ErrVertexOutOfRange).Err()
			}
			if u == v {
				return newError("validate").Vertex(v).Cause(ErrSelfLoop).Err()
			}
			if i > 0 && nghs[i-1] >= u {
				return newError("validate").Vertex(v).Cause(ErrUnsortedAdjacency).Err()
			}
		}
	}
	return nil
}
