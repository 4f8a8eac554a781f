package scan

import "github.com/dd0wney/cluso-scan/pkg/parallel"

// clusterWithIndices runs the SCAN clustering procedure against prebuilt
// neighbor-order and core-order indices.
//
// Phases, each a parallel loop separated by a join barrier:
//  1. mark cores (read off the core order),
//  2. union epsilon-connected core pairs,
//  3. assign each core its set root as cluster ID,
//  4. attach border vertices to the first epsilon-adjacent core found.
//
// Which core claims a border vertex that qualifies for several clusters is
// unspecified. The core set and its partition are deterministic for a fixed
// index; the cluster IDs are union-find roots and can differ between calls
// when the union phase runs concurrently.
func clusterWithIndices(no *NeighborOrder, co *CoreOrder, mu uint64, epsilon float32) (Clustering, error) {
	if mu < 2 {
		return nil, clusterError("precondition", ErrInvalidMu)
	}
	if isNaN32(epsilon) || epsilon < 0 || epsilon > 1 {
		return nil, clusterError("precondition", ErrInvalidEpsilon)
	}

	n := no.NumVertices()
	cores := co.CoresAt(mu, epsilon)

	isCore := make([]bool, n)
	parallel.For(len(cores), func(i int) {
		isCore[cores[i].Vertex] = true
	})

	// Union cores joined by an epsilon-edge. The neighbor order is sorted
	// descending, so each scan stops at the first sub-epsilon edge and
	// never touches the rest.
	uf := newUnionFind(n)
	parallel.For(len(cores), func(i int) {
		u := cores[i].Vertex
		for _, pair := range no.Edges(u) {
			if pair.Similarity < epsilon {
				break
			}
			if isCore[pair.Neighbor] {
				uf.union(u, pair.Neighbor)
			}
		}
	})

	clusters := make(Clustering, n)
	parallel.For(n, func(i int) {
		clusters[i] = Unclustered
	})
	parallel.For(len(cores), func(i int) {
		v := cores[i].Vertex
		clusters[v] = uf.find(v)
	})

	// Border attachment: a non-core joins the cluster of some
	// epsilon-adjacent core, if any.
	parallel.For(n, func(i int) {
		v := uint32(i)
		if isCore[v] {
			return
		}
		for _, pair := range no.Edges(v) {
			if pair.Similarity < epsilon {
				break
			}
			if isCore[pair.Neighbor] {
				clusters[v] = clusters[pair.Neighbor]
				break
			}
		}
	})

	return clusters, nil
}
