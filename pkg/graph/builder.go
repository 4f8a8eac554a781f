package graph

import (
	"sort"

	"github.com/dd0wney/cluso-scan/pkg/parallel"
)

// Edge is one undirected edge in an input edge list. Orientation does not
// matter; {U,V} and {V,U} describe the same edge.
type Edge struct {
	U, V uint32
}

// NewFromEdgeList builds a CSR graph from an undirected edge list.
// Self-loops and duplicate edges are dropped. The vertex count is
// 1 + the largest endpoint ID seen (or numVertices if larger).
func NewFromEdgeList(edgeList []Edge, numVertices int) (*Graph, error) {
	if len(edgeList) == 0 && numVertices == 0 {
		return nil, newError("build").Cause(ErrEmptyGraph).Err()
	}
	n := numVertices
	for _, e := range edgeList {
		if int(e.U)+1 > n {
			n = int(e.U) + 1
		}
		if int(e.V)+1 > n {
			n = int(e.V) + 1
		}
	}

	// Symmetrize: one directed pair per endpoint.
	pairs := make([]Edge, 0, 2*len(edgeList))
	for _, e := range edgeList {
		if e.U == e.V {
			continue
		}
		pairs = append(pairs, Edge{e.U, e.V}, Edge{e.V, e.U})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].U != pairs[j].U {
			return pairs[i].U < pairs[j].U
		}
		return pairs[i].V < pairs[j].V
	})

	// Dedupe in place.
	dedup := pairs[:0]
	for i, p := range pairs {
		if i > 0 && p == pairs[i-1] {
			continue
		}
		dedup = append(dedup, p)
	}

	counts := make([]uint64, n+1)
	for _, p := range dedup {
		counts[p.U]++
	}
	parallel.ScanAdd(counts)

	edges := make([]uint32, len(dedup))
	parallel.For(len(dedup), func(i int) {
		edges[i] = dedup[i].V
	})

	return &Graph{offsets: counts, edges: edges}, nil
}

// NewFromCSR wraps pre-built CSR arrays after validating them. offsets must
// have one more entry than the vertex count and end at len(edges).
func NewFromCSR(offsets []uint64, edges []uint32) (*Graph, error) {
	if len(offsets) < 2 {
		return nil, newError("build").Cause(ErrEmptyGraph).Err()
	}
	if offsets[0] != 0 || offsets[len(offsets)-1] != uint64(len(edges)) {
		return nil, newError("build").Cause(ErrBadEdgeList).Err()
	}
	g := &Graph{offsets: offsets, edges: edges}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
