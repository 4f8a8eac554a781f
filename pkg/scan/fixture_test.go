package scan

import (
	"math/rand"
	"testing"

	"github.com/dd0wney/cluso-scan/pkg/graph"
)

// fixtureGraph returns two triangles {0,1,2} and {3,4,5} joined by the
// bridge edge (2,3).
func fixtureGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewFromEdgeList([]graph.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2},
		{U: 2, V: 3},
		{U: 3, V: 4}, {U: 3, V: 5}, {U: 4, V: 5},
	}, 0)
	if err != nil {
		t.Fatalf("Failed to build fixture graph: %v", err)
	}
	return g
}

// erdosRenyi generates a G(n, p) random graph from a fixed seed.
func erdosRenyi(t *testing.T, n int, p float64, seed int64) *graph.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var edges []graph.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, graph.Edge{U: uint32(i), V: uint32(j)})
			}
		}
	}
	g, err := graph.NewFromEdgeList(edges, n)
	if err != nil {
		t.Fatalf("Failed to build random graph: %v", err)
	}
	return g
}

// similarityOf finds the similarity reported for the half-edge u -> v.
func similarityOf(t *testing.T, sims []EdgeSimilarity, u, v uint32) float32 {
	t.Helper()
	for _, es := range sims {
		if es.Source == u && es.Neighbor == v {
			return es.Similarity
		}
	}
	t.Fatalf("no similarity entry for edge %d -> %d", u, v)
	return 0
}

// sharedNeighborCount counts common open neighbors of u and v by set
// intersection, independent of the triangle-counting kernel.
func sharedNeighborCount(g *graph.Graph, u, v uint32) uint32 {
	inU := make(map[uint32]bool, g.Degree(u))
	for _, w := range g.Neighbors(u) {
		inU[w] = true
	}
	var shared uint32
	for _, w := range g.Neighbors(v) {
		if inU[w] {
			shared++
		}
	}
	return shared
}

// coreSet returns the set of vertices labeled core at (mu, epsilon), read
// directly off the core-order definition.
func coreSet(co *CoreOrder, mu uint64, epsilon float32) map[uint32]bool {
	cores := make(map[uint32]bool)
	for _, entry := range co.CoresAt(mu, epsilon) {
		cores[entry.Vertex] = true
	}
	return cores
}
