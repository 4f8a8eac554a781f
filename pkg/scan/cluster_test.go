package scan

import (
	"errors"
	"testing"
)

func buildFixtureIndex(t *testing.T, measure SimilarityMeasure) *Index {
	t.Helper()
	index, err := BuildIndex(fixtureGraph(t), measure)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	return index
}

func TestCluster_SplitsTrianglesAtBridge(t *testing.T) {
	// At mu=3 the bridge edge (2,3) at similarity 0.5 is far below
	// epsilon, so the two triangles become separate clusters.
	index := buildFixtureIndex(t, CosineSimilarity{})

	clusters, err := index.Cluster(3, 0.85)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}

	if clusters[0] != clusters[1] || clusters[1] != clusters[2] {
		t.Errorf("triangle {0,1,2} split: %v", clusters[:3])
	}
	if clusters[3] != clusters[4] || clusters[4] != clusters[5] {
		t.Errorf("triangle {3,4,5} split: %v", clusters[3:])
	}
	if clusters[0] == clusters[3] {
		t.Errorf("triangles merged across the bridge: %v", clusters)
	}
	for v, id := range clusters {
		if id == Unclustered {
			t.Errorf("vertex %d unclustered, want a cluster", v)
		}
	}

	stats := clusters.Stats()
	if stats.Clusters != 2 || stats.Largest != 3 || stats.Unclustered != 0 {
		t.Errorf("stats = %+v, want 2 clusters of 3", stats)
	}
}

func TestCluster_LowEpsilonMergesEverything(t *testing.T) {
	index := buildFixtureIndex(t, CosineSimilarity{})

	clusters, err := index.Cluster(2, 0.01)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}

	for v := 1; v < len(clusters); v++ {
		if clusters[v] != clusters[0] {
			t.Fatalf("vertex %d in cluster %d, want %d (single cluster)", v, clusters[v], clusters[0])
		}
	}
	if clusters[0] == Unclustered {
		t.Fatal("everything unclustered at epsilon=0.01")
	}
}

func TestCluster_MuAboveMaxDegreeLeavesEverythingUnclustered(t *testing.T) {
	index := buildFixtureIndex(t, CosineSimilarity{})

	clusters, err := index.Cluster(6, 0.0)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}

	for v, id := range clusters {
		if id != Unclustered {
			t.Errorf("vertex %d has cluster %d, want Unclustered (max degree 3)", v, id)
		}
	}
}

func TestCluster_JaccardSplitsTrianglesToo(t *testing.T) {
	index := buildFixtureIndex(t, JaccardSimilarity{})

	clusters, err := index.Cluster(3, 0.7)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}

	stats := clusters.Stats()
	if stats.Clusters != 2 || stats.Unclustered != 0 {
		t.Errorf("stats = %+v, want two full clusters", stats)
	}
	if clusters[0] == clusters[3] {
		t.Error("triangles merged across the bridge")
	}
}

func TestCluster_RepeatedCallsAgreeOnCores(t *testing.T) {
	// Cluster IDs are roots of a concurrently built union-find, so labels
	// can differ between calls; the partition of the cores cannot.
	index := buildFixtureIndex(t, CosineSimilarity{})
	cores := coreSet(index.coreOrder, 3, 0.85)

	first, err := index.Cluster(3, 0.85)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	second, err := index.Cluster(3, 0.85)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}

	for u := range cores {
		for v := range cores {
			if (first[u] == first[v]) != (second[u] == second[v]) {
				t.Errorf("cores %d and %d grouped differently across calls", u, v)
			}
		}
	}
}

func TestCluster_CoreAndBorderContract(t *testing.T) {
	g := erdosRenyi(t, 200, 0.1, 77)
	index, err := BuildIndex(g, CosineSimilarity{})
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	const mu, eps = 3, 0.3
	clusters, err := index.Cluster(mu, eps)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	cores := coreSet(index.coreOrder, mu, eps)
	no := index.NeighborOrder()

	for v := uint32(0); v < uint32(len(clusters)); v++ {
		if cores[v] {
			// Every core has at least mu-1 epsilon-similar edges and a
			// cluster ID.
			if no.CountAtLeast(v, eps) < mu-1 {
				t.Errorf("core %d has too few epsilon-edges", v)
			}
			if clusters[v] == Unclustered {
				t.Errorf("core %d left unclustered", v)
			}
			continue
		}
		if clusters[v] == Unclustered {
			continue
		}
		// A clustered border vertex must be epsilon-adjacent to a core
		// with the same cluster ID.
		justified := false
		for _, pair := range no.Edges(v) {
			if pair.Similarity < eps {
				break
			}
			if cores[pair.Neighbor] && clusters[pair.Neighbor] == clusters[v] {
				justified = true
				break
			}
		}
		if !justified {
			t.Errorf("border %d carries cluster %d with no matching epsilon-adjacent core", v, clusters[v])
		}
	}
}

func TestCluster_EpsilonConnectedCoresShareCluster(t *testing.T) {
	g := erdosRenyi(t, 200, 0.1, 78)
	index, err := BuildIndex(g, JaccardSimilarity{})
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	const mu, eps = 3, 0.2
	clusters, err := index.Cluster(mu, eps)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	cores := coreSet(index.coreOrder, mu, eps)
	no := index.NeighborOrder()

	for v := range cores {
		for _, pair := range no.Edges(v) {
			if pair.Similarity < eps {
				break
			}
			if cores[pair.Neighbor] && clusters[v] != clusters[pair.Neighbor] {
				t.Errorf("epsilon-connected cores %d and %d in different clusters", v, pair.Neighbor)
			}
		}
	}
}

func TestCluster_PreconditionErrors(t *testing.T) {
	index := buildFixtureIndex(t, CosineSimilarity{})

	if _, err := index.Cluster(1, 0.5); !errors.Is(err, ErrInvalidMu) {
		t.Errorf("mu=1: err = %v, want ErrInvalidMu", err)
	}
	if _, err := index.Cluster(0, 0.5); !errors.Is(err, ErrInvalidMu) {
		t.Errorf("mu=0: err = %v, want ErrInvalidMu", err)
	}
	if _, err := index.Cluster(2, -0.1); !errors.Is(err, ErrInvalidEpsilon) {
		t.Errorf("eps=-0.1: err = %v, want ErrInvalidEpsilon", err)
	}
	if _, err := index.Cluster(2, 1.5); !errors.Is(err, ErrInvalidEpsilon) {
		t.Errorf("eps=1.5: err = %v, want ErrInvalidEpsilon", err)
	}
	nan := float32(0)
	nan = nan / nan
	if _, err := index.Cluster(2, nan); !errors.Is(err, ErrInvalidEpsilon) {
		t.Errorf("eps=NaN: err = %v, want ErrInvalidEpsilon", err)
	}
}
