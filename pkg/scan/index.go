package scan

import (
	"time"

	"github.com/dd0wney/cluso-scan/pkg/graph"
	"github.com/dd0wney/cluso-scan/pkg/logging"
	"github.com/dd0wney/cluso-scan/pkg/metrics"
)

// Index is a reusable SCAN index over one graph and one similarity measure.
// Construction is expensive; clustering against the finished index is cheap
// and can run from any number of goroutines concurrently, since the index is
// immutable after BuildIndex returns.
type Index struct {
	numVertices   int
	neighborOrder *NeighborOrder
	coreOrder     *CoreOrder
	log           logging.Logger
	metrics       *metrics.Registry
}

// Option configures index construction.
type Option func(*Index)

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(ix *Index) { ix.log = l }
}

// WithMetrics attaches a metrics registry. Defaults to none.
func WithMetrics(r *metrics.Registry) Option {
	return func(ix *Index) { ix.metrics = r }
}

// BuildIndex computes every edge similarity under the given measure and
// assembles the neighbor-order and core-order indices. The graph's adjacency
// lists must be sorted by ascending neighbor ID; BuildIndex verifies this
// and fails otherwise.
func BuildIndex(g *graph.Graph, measure SimilarityMeasure, opts ...Option) (*Index, error) {
	ix := &Index{log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(ix)
	}

	if g == nil {
		return nil, buildError(measure.Name(), ErrNilGraph)
	}
	if err := g.Validate(); err != nil {
		ix.metrics.RecordIndexBuild(measure.Name(), "error", 0, 0)
		return nil, buildError(measure.Name(), err)
	}

	timer := logging.StartTimer(ix.log, "index build complete",
		logging.Component("scan"),
		logging.Measure(measure.Name()),
		logging.VertexCount(g.NumVertices()),
		logging.EdgeCount(g.NumEdges()),
	)
	start := time.Now()

	similarities, err := measure.AllEdges(g)
	if err != nil {
		ix.metrics.RecordIndexBuild(measure.Name(), "error", 0, 0)
		timer.EndError(err)
		return nil, err
	}

	neighborOrder, err := newNeighborOrder(g, similarities)
	if err != nil {
		ix.metrics.RecordIndexBuild(measure.Name(), "error", 0, 0)
		timer.EndError(err)
		return nil, buildError(measure.Name(), err)
	}

	ix.numVertices = g.NumVertices()
	ix.neighborOrder = neighborOrder
	ix.coreOrder = newCoreOrder(neighborOrder)

	if sketched, ok := sketchedVertexCount(g, measure); ok {
		ix.metrics.RecordFingerprintedVertices(sketched)
	}
	ix.metrics.RecordIndexBuild(measure.Name(), "ok", time.Since(start), uint64(len(similarities)))
	timer.End()
	return ix, nil
}

// NumVertices returns the number of vertices the index covers.
func (ix *Index) NumVertices() int {
	return ix.numVertices
}

// NeighborOrder exposes the per-vertex similarity-sorted edge lists.
func (ix *Index) NeighborOrder() *NeighborOrder {
	return ix.neighborOrder
}

// Cluster computes a SCAN clustering at parameters (mu, epsilon).
//
// A border vertex that is epsilon-adjacent to cores of several clusters is
// assigned to one of them arbitrarily, and the cluster ID values can differ
// between calls; the core set and how it is partitioned are determined by the
// index. mu must be at least 2 and epsilon must lie in [0, 1].
func (ix *Index) Cluster(mu uint64, epsilon float32) (Clustering, error) {
	start := time.Now()
	clusters, err := clusterWithIndices(ix.neighborOrder, ix.coreOrder, mu, epsilon)
	if err != nil {
		ix.metrics.RecordClusterQuery("error", 0, 0, 0, 0)
		return nil, err
	}

	cores := len(ix.coreOrder.CoresAt(mu, epsilon))
	stats := clusters.Stats()
	elapsed := time.Since(start)
	ix.metrics.RecordClusterQuery("ok", elapsed, cores, stats.Clusters, stats.Unclustered)
	ix.log.Debug("cluster query complete",
		logging.Component("scan"),
		logging.Mu(mu),
		logging.Epsilon(epsilon),
		logging.Cores(cores),
		logging.Clusters(stats.Clusters),
		logging.Latency(elapsed),
	)
	return clusters, nil
}
