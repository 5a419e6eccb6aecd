// Package dijkstra provides a deterministic implementation of Dijkstra's
// shortest-path algorithm over index-addressed topologies with non-negative
// arc weights. It is the search engine behind core.Graph.FindShortestPath.
//
// Overview:
//
//   - Search computes the minimum-cost route from a single source vertex to
//     every reachable vertex, or stops as soon as an optional Target is settled.
//   - All working state (distances, predecessors, visited set) is allocated per
//     call and handed back in a Result; the Topology is only read.
//   - Result.PathTo walks the predecessor chain backwards and returns the route
//     in source→target order.
//
// Selection strategies:
//
//   - LinearScan (default): scans the unvisited set for the minimum every step.
//     O(V²) time; the best choice for small, dense graphs.
//   - OrderedFrontier: keeps reached vertices in a github.com/tidwall/btree
//     ordered by (distance, index) and decreases keys by delete+insert.
//     O((V + E) log V) time.
//
// Both strategies break distance ties by lowest vertex index, so they settle
// vertices in the same order and produce identical Results.
//
// Error handling (sentinel errors):
//
//   - ErrNilTopology:      the topology passed to Search is nil.
//   - ErrNoSource:         Source(...) was not supplied.
//   - ErrVertexOutOfRange: Source or Target is not in [0, Order()).
//   - ErrNegativeWeight:   some arc has a negative or NaN weight (O(E) pre-scan).
//   - WithStrategy panics on an unknown Strategy value.
//
// API reference:
//
//	func Search(t Topology, opts ...Option) (*Result, error)
//
//	  - t:    the topology; Order() vertices, Arcs(v) outgoing arcs of v.
//	  - opts: Source(int) (required), Target(int), WithStrategy(Strategy).
//
// Thread safety:
//
//   - Search never mutates t; concurrent searches on one immutable topology
//     are safe. A Result is owned by the caller.
package dijkstra
