// SPDX-License-Identifier: MIT
// Package: pathmap/core
//
// builder.go — accumulates vertices and undirected edges, then freezes them.

package core

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/pathmap/dijkstra"
	"github.com/katalvlaran/pathmap/metrics"
	"github.com/katalvlaran/pathmap/point"
)

// pending is a builder-side vertex: its point and neighbor indices.
// Parallel edges appear as repeated indices.
type pending struct {
	p    point.Point
	nbrs []int
}

// Builder accumulates vertices and bidirectional edges for a Graph.
//
// Methods return the Builder so calls can be chained. The first failure is
// sticky: it is reported by Err and Build, and every later AddVertex or
// Connect is a no-op. A Builder is not safe for concurrent use.
type Builder struct {
	cfg      config
	index    map[point.Point]int
	vertices []pending
	edges    int
	err      error
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		cfg:   newConfig(opts...),
		index: make(map[point.Point]int),
	}
}

// AddVertex registers a vertex at p.
//
// Re-adding an existing point replaces its vertex: every edge it had is
// dropped from both endpoints, so add all vertices before connecting them.
// A non-finite coordinate fails with ErrInvalidPoint.
// Complexity: O(1), or O(deg) over the old neighbors on replacement.
func (b *Builder) AddVertex(p point.Point) *Builder {
	if b.err != nil {
		return b
	}
	if !p.IsFinite() {
		b.fail(fmt.Errorf("%w: %s", ErrInvalidPoint, p))
		return b
	}

	i, ok := b.index[p]
	if !ok {
		b.index[p] = len(b.vertices)
		b.vertices = append(b.vertices, pending{p: p})
		return b
	}

	b.detach(i)
	return b
}

// detach removes every edge incident to vertex i.
func (b *Builder) detach(i int) {
	old := b.vertices[i].nbrs
	b.edges -= len(old)
	for _, j := range old {
		if j == i {
			continue
		}
		b.vertices[j].nbrs = slices.DeleteFunc(b.vertices[j].nbrs, func(k int) bool { return k == i })
	}
	b.vertices[i].nbrs = nil
}

// Connect adds an undirected edge between the vertices at u and v.
//
// Both points must already be registered, otherwise Connect fails with
// ErrUnknownVertex naming the missing point(s) and adds nothing.
// Connecting the same pair twice adds a parallel edge; Connect(u, u) adds
// a single self-loop.
// Complexity: O(1) amortized.
func (b *Builder) Connect(u, v point.Point) *Builder {
	if b.err != nil {
		return b
	}

	iu, okU := b.index[u]
	iv, okV := b.index[v]
	switch {
	case !okU && !okV && u != v:
		b.fail(unknownVertices(u, v))
		return b
	case !okU:
		b.fail(unknownVertices(u))
		return b
	case !okV:
		b.fail(unknownVertices(v))
		return b
	}

	b.vertices[iu].nbrs = append(b.vertices[iu].nbrs, iv)
	if iu != iv {
		b.vertices[iv].nbrs = append(b.vertices[iv].nbrs, iu)
	}
	b.edges++

	return b
}

// fail records the first error.
func (b *Builder) fail(err error) {
	b.err = err
	b.cfg.logger.Warn("graph builder rejected input", "error", err)
}

// Err returns the first error recorded by AddVertex or Connect.
func (b *Builder) Err() error { return b.err }

// HasVertex reports whether p has been registered.
func (b *Builder) HasVertex(p point.Point) bool {
	_, ok := b.index[p]
	return ok
}

// NumVertices returns the number of distinct registered points.
func (b *Builder) NumVertices() int { return len(b.vertices) }

// NumEdges returns the number of edges added so far, parallel edges included.
func (b *Builder) NumEdges() int { return b.edges }

// Build freezes the accumulated vertices and edges into an immutable Graph.
//
// The Graph shares no storage with the Builder. Vertex indices follow
// registration order, and every arc weight is the Euclidean distance
// between its endpoints, computed once here.
// Complexity: O(V + E).
func (b *Builder) Build() (*Graph, error) {
	start := time.Now()
	if b.err != nil {
		b.cfg.metrics.RecordBuild(metrics.BuildStats{Duration: time.Since(start)}, b.err)
		return nil, b.err
	}

	n := len(b.vertices)
	g := &Graph{
		cfg:    b.cfg,
		points: make([]point.Point, n),
		index:  make(map[point.Point]int, n),
		edges:  b.edges,
		topo: topology{
			offsets: make([]int, n+1),
		},
	}

	arcs := 0
	for _, v := range b.vertices {
		arcs += len(v.nbrs)
	}
	g.topo.arcs = make([]dijkstra.Arc, 0, arcs)

	for i, v := range b.vertices {
		g.points[i] = v.p
		g.index[v.p] = i
		g.topo.offsets[i] = len(g.topo.arcs)
		for _, j := range v.nbrs {
			g.topo.arcs = append(g.topo.arcs, dijkstra.Arc{
				To:     j,
				Weight: point.Distance(v.p, b.vertices[j].p),
			})
		}
	}
	g.topo.offsets[n] = len(g.topo.arcs)

	stats := metrics.BuildStats{Vertices: n, Edges: g.edges, Duration: time.Since(start)}
	b.cfg.metrics.RecordBuild(stats, nil)
	b.cfg.logger.Debug("graph built", "vertices", n, "edges", g.edges, "duration", stats.Duration)

	return g, nil
}
