// Package dijkstra implements Dijkstra's shortest-path search on
// index-addressed topologies with non-negative arc weights.
//
// Every run owns its state: distances, predecessors and the visited set are
// allocated per call and returned in a Result. Nothing is written back into
// the Topology, so a single immutable topology may be searched by any number
// of goroutines at once.
//
// Selection order is deterministic: among unvisited vertices with the same
// tentative distance the one with the lowest index is settled first. Both
// strategies honor this rule, so they return identical Results.
//
// Complexity:
//
//   - LinearScan:      Time O(V² + E), Space O(V).
//   - OrderedFrontier: Time O((V + E) log V), Space O(V).
//   - Both add an O(E) weight pre-scan.
package dijkstra

import (
	"fmt"
	"math"
	"slices"
)

// Result holds the per-run search metadata.
type Result struct {
	// Source is the index the search started from.
	Source int
	// Dist[v] is the best known distance from Source, +Inf if v was never reached.
	// With a Target, only vertices settled before Target are final.
	Dist []float64
	// Prev[v] is the predecessor of v on the best known route, NoVertex if none.
	Prev []int
	// Settled counts the vertices removed from the unvisited set, Target included.
	Settled int
}

// Reached reports whether v received a finite distance.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}

// PathTo walks the predecessor chain backwards from v and returns the
// vertex indices in Source→v order. Returns nil if v was never reached and
// []int{Source} if v == Source.
// Complexity: O(len(path)).
func (r *Result) PathTo(v int) []int {
	if !r.Reached(v) {
		return nil
	}

	// Collect target→source, then flip.
	var walk []int
	for cur := v; cur != NoVertex; cur = r.Prev[cur] {
		walk = append(walk, cur)
	}
	slices.Reverse(walk)

	return walk
}

// Search runs Dijkstra's algorithm on t.
//
// Preconditions and validation (in order):
//  1. t must be non-nil (ErrNilTopology).
//  2. Source must be set (ErrNoSource).
//  3. Source and, if set, Target must be valid indices (ErrVertexOutOfRange).
//  4. No arc may have a negative or NaN weight (ErrNegativeWeight).
//
// The loop settles the closest unvisited vertex, stops immediately when that
// vertex is Target, and otherwise relaxes its arcs with a strict "<". It ends
// when every remaining unvisited vertex is at +Inf.
func Search(t Topology, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if t == nil {
		return nil, ErrNilTopology
	}
	if cfg.Source == NoVertex {
		return nil, ErrNoSource
	}
	n := t.Order()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: source %d, order %d", ErrVertexOutOfRange, cfg.Source, n)
	}
	if cfg.Target != NoVertex && (cfg.Target < 0 || cfg.Target >= n) {
		return nil, fmt.Errorf("%w: target %d, order %d", ErrVertexOutOfRange, cfg.Target, n)
	}

	// 3) Pre-scan arcs; Euclidean topologies always pass, generic ones may not.
	for u := 0; u < n; u++ {
		for _, a := range t.Arcs(u) {
			if a.Weight < 0 || math.IsNaN(a.Weight) {
				return nil, fmt.Errorf("%w: arc %d→%d weight=%g", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	// 4) Run
	r := newRunner(t, cfg)
	r.init()
	r.process()

	return &Result{
		Source:  cfg.Source,
		Dist:    r.dist,
		Prev:    r.prev,
		Settled: r.settled,
	}, nil
}

// frontier yields the next vertex to settle and tracks distance changes.
type frontier interface {
	// next returns the unvisited vertex with the smallest (distance, index),
	// or NoVertex when none has a finite distance.
	next() int
	// lowered records that dist[v] dropped from old to the current value.
	lowered(v int, old float64)
}

// runner holds the mutable state for a single search.
type runner struct {
	t       Topology
	options Options
	dist    []float64
	prev    []int
	visited []bool
	settled int
	front   frontier
}

func newRunner(t Topology, cfg Options) *runner {
	n := t.Order()
	r := &runner{
		t:       t,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	switch cfg.Strategy {
	case OrderedFrontier:
		r.front = newOrderedFrontier(r)
	default:
		r.front = &linearFrontier{r: r}
	}

	return r
}

// init resets all metadata and seeds the source at distance zero.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoVertex
	}

	src := r.options.Source
	old := r.dist[src]
	r.dist[src] = 0
	r.front.lowered(src, old)
}

// process is the main settle/relax loop.
func (r *runner) process() {
	for {
		u := r.front.next()
		if u == NoVertex {
			// Nothing left with a finite distance: the rest is unreachable.
			return
		}

		r.visited[u] = true
		r.settled++

		if u == r.options.Target {
			return
		}

		r.relax(u)
	}
}

// relax tries to improve every neighbor of the settled vertex u.
// Only a strictly shorter candidate replaces the recorded distance, so the
// first route found keeps its predecessor on ties.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, a := range r.t.Arcs(u) {
		v := a.To
		// A settled vertex can never improve with non-negative weights.
		if r.visited[v] {
			continue
		}

		cand := du + a.Weight
		if cand >= r.dist[v] {
			continue
		}

		old := r.dist[v]
		r.dist[v] = cand
		r.prev[v] = u
		r.front.lowered(v, old)
	}
}

// linearFrontier is the plain O(V) scan over the unvisited set.
type linearFrontier struct {
	r *runner
}

func (f *linearFrontier) next() int {
	best := NoVertex
	for v, seen := range f.r.visited {
		if seen {
			continue
		}
		// Strict "<" keeps the lowest index among equal distances.
		if best == NoVertex || f.r.dist[v] < f.r.dist[best] {
			best = v
		}
	}
	if best == NoVertex || math.IsInf(f.r.dist[best], 1) {
		return NoVertex
	}

	return best
}

func (f *linearFrontier) lowered(int, float64) {}
