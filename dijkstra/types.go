// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search on index-addressed topologies.
//
// A Topology numbers its vertices 0..Order()-1 and exposes, per vertex,
// the outgoing arcs with their non-negative weights. Undirected graphs
// present every edge as two arcs, one per direction.
//
// Options:
//
//	– Source:       index of the starting vertex (required).
//	– Target:       optional index; the search stops as soon as it is settled.
//	– WithStrategy: how the next vertex to settle is selected.
//
// Errors (sentinel):
//
//	– ErrNilTopology      if the provided topology is nil.
//	– ErrNoSource         if Source was not set.
//	– ErrVertexOutOfRange if Source or Target is not a valid index.
//	– ErrNegativeWeight   if a negative (or NaN) arc weight is detected.
package dijkstra

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Search.
var (
	// ErrNilTopology indicates that a nil Topology was passed to Search.
	ErrNilTopology = errors.New("dijkstra: topology is nil")

	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrVertexOutOfRange indicates that Source or Target is outside [0, Order()).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrNegativeWeight indicates that an arc with a negative or NaN weight was found.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// NoVertex marks an absent vertex: no predecessor, or no target.
const NoVertex = -1

// Arc is one directed half of an edge: the neighbor index and the edge weight.
type Arc struct {
	To     int
	Weight float64
}

// Topology is the read-only view Search runs on.
// Arcs may list the same neighbor more than once (parallel edges).
type Topology interface {
	// Order returns the number of vertices.
	Order() int
	// Arcs returns the outgoing arcs of v. Callers must not modify the slice.
	Arcs(v int) []Arc
}

// Strategy selects how the next unvisited vertex is found.
type Strategy int

const (
	// LinearScan scans every unvisited vertex per step: O(V²) time, O(V) space.
	LinearScan Strategy = iota

	// OrderedFrontier keeps reached vertices in a B-tree ordered by
	// (distance, index): O((V+E) log V) time.
	OrderedFrontier
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case LinearScan:
		return "linear-scan"
	case OrderedFrontier:
		return "ordered-frontier"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Valid reports whether s is a known Strategy.
func (s Strategy) Valid() bool {
	return s == LinearScan || s == OrderedFrontier
}

// Options configures a single Search run.
type Options struct {
	Source   int      // index of the source vertex; NoVertex until set
	Target   int      // index of the early-exit target; NoVertex for a full run
	Strategy Strategy // vertex selection strategy
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no source, no target and LinearScan.
func DefaultOptions() Options {
	return Options{
		Source:   NoVertex,
		Target:   NoVertex,
		Strategy: LinearScan,
	}
}

// Source sets the starting vertex index. Must be supplied.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// Target sets the vertex whose settlement ends the search early.
// Distances of vertices farther than Target are left unfinalized.
func Target(v int) Option {
	return func(o *Options) {
		o.Target = v
	}
}

// WithStrategy sets the vertex selection strategy.
// Panics on an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	if !s.Valid() {
		panic(fmt.Sprintf("dijkstra: WithStrategy(%d): unknown strategy", int(s)))
	}
	return func(o *Options) {
		o.Strategy = s
	}
}
