package scan

import "sync/atomic"

// unionFind is a lock-free disjoint-set structure over vertex IDs.
// Concurrent Union and Find are safe: parent updates go through
// compare-and-swap, Find uses path halving, and Union links by rank.
// Go's atomics give sequentially consistent ordering, which covers the
// acquire-release visibility the union phase needs.
type unionFind struct {
	parent []atomic.Uint32
	rank   []atomic.Uint32
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]atomic.Uint32, n),
		rank:   make([]atomic.Uint32, n),
	}
	for i := range uf.parent {
		uf.parent[i].Store(uint32(i))
	}
	return uf
}

// find returns the root of x's set, halving the path as it walks.
func (uf *unionFind) find(x uint32) uint32 {
	for {
		p := uf.parent[x].Load()
		if p == x {
			return x
		}
		gp := uf.parent[p].Load()
		if gp == p {
			return p
		}
		uf.parent[x].CompareAndSwap(p, gp)
		x = gp
	}
}

// union merges the sets of x and y, linking the lower-rank root under the
// higher. Rank ties break toward the smaller vertex ID so retries converge.
func (uf *unionFind) union(x, y uint32) {
	for {
		rx, ry := uf.find(x), uf.find(y)
		if rx == ry {
			return
		}
		kx, ky := uf.rank[rx].Load(), uf.rank[ry].Load()
		if kx > ky || (kx == ky && rx < ry) {
			rx, ry = ry, rx
			kx, ky = ky, kx
		}
		// rx has the lower rank (or larger ID on ties): hang it under ry.
		if uf.parent[rx].CompareAndSwap(rx, ry) {
			if kx == ky {
				uf.rank[ry].CompareAndSwap(ky, ky+1)
			}
			return
		}
		// Lost the race; rx gained a parent in the meantime. Retry.
	}
}
