package dijkstra

import (
	"math"

	"github.com/tidwall/btree"
)

// frontierItem orders reached vertices by (dist, v).
type frontierItem struct {
	dist float64
	v    int
}

func frontierLess(a, b frontierItem) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.v < b.v
}

// orderedFrontier keeps every reached, unvisited vertex exactly once.
// A lowered distance deletes the old key before inserting the new one, so
// PopMin never returns a stale entry.
type orderedFrontier struct {
	r    *runner
	tree *btree.BTreeG[frontierItem]
}

func newOrderedFrontier(r *runner) *orderedFrontier {
	// A run is single-goroutine; the tree needs no internal locking.
	return &orderedFrontier{
		r:    r,
		tree: btree.NewBTreeG(frontierLess),
	}
}

func (f *orderedFrontier) next() int {
	item, ok := f.tree.PopMin()
	if !ok {
		return NoVertex
	}

	return item.v
}

func (f *orderedFrontier) lowered(v int, old float64) {
	if !math.IsInf(old, 1) {
		f.tree.Delete(frontierItem{dist: old, v: v})
	}
	f.tree.Set(frontierItem{dist: f.r.dist[v], v: v})
}
