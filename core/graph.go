// SPDX-License-Identifier: MIT
// Package: pathmap/core
//
// graph.go — the immutable graph and its read-only accessors.
// Policy:
//   • Topology is frozen at Build; no method mutates a Graph.
//   • Accessors return copies, never internal slices.

package core

import (
	"slices"

	"github.com/katalvlaran/pathmap/dijkstra"
	"github.com/katalvlaran/pathmap/point"
)

// Graph is an immutable undirected graph over 3-D points.
//
// Vertices live in an arena addressed by registration index; edges are
// stored as a CSR adjacency (one arc per direction) with precomputed
// Euclidean weights. Every query allocates its own search state, so a Graph
// may be read and queried from several goroutines at once.
type Graph struct {
	cfg    config
	points []point.Point       // index → point
	index  map[point.Point]int // point → index
	edges  int                 // undirected edges, parallel edges included
	topo   topology
}

// topology is the CSR view handed to dijkstra.Search.
// arcs[offsets[v]:offsets[v+1]] are the arcs leaving v.
type topology struct {
	offsets []int
	arcs    []dijkstra.Arc
}

// Order implements dijkstra.Topology.
func (t topology) Order() int { return len(t.offsets) - 1 }

// Arcs implements dijkstra.Topology.
func (t topology) Arcs(v int) []dijkstra.Arc {
	return t.arcs[t.offsets[v]:t.offsets[v+1]]
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return len(g.points) }

// NumEdges returns the number of undirected edges, parallel edges included.
func (g *Graph) NumEdges() int { return g.edges }

// HasVertex reports whether p is a vertex of g.
func (g *Graph) HasVertex(p point.Point) bool {
	_, ok := g.index[p]
	return ok
}

// HasEdge reports whether u and v are joined by at least one edge.
// Unknown points simply yield false.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v point.Point) bool {
	iu, okU := g.index[u]
	iv, okV := g.index[v]
	if !okU || !okV {
		return false
	}

	return slices.ContainsFunc(g.topo.Arcs(iu), func(a dijkstra.Arc) bool { return a.To == iv })
}

// Vertices returns all vertices in registration order.
func (g *Graph) Vertices() []point.Point {
	return slices.Clone(g.points)
}

// Neighbors returns the neighbors of p in connection order. A neighbor
// joined by k parallel edges appears k times.
// Returns ErrUnknownVertex if p is not a vertex.
func (g *Graph) Neighbors(p point.Point) ([]point.Point, error) {
	i, ok := g.index[p]
	if !ok {
		return nil, unknownVertices(p)
	}

	arcs := g.topo.Arcs(i)
	out := make([]point.Point, len(arcs))
	for k, a := range arcs {
		out[k] = g.points[a.To]
	}

	return out, nil
}

// lookup resolves both endpoints of a query, naming every missing one.
func (g *Graph) lookup(src, dst point.Point) (int, int, error) {
	si, okS := g.index[src]
	di, okD := g.index[dst]
	switch {
	case !okS && !okD && src != dst:
		return 0, 0, unknownVertices(src, dst)
	case !okS:
		return 0, 0, unknownVertices(src)
	case !okD:
		return 0, 0, unknownVertices(dst)
	}

	return si, di, nil
}
