// Package pathmap finds shortest routes through graphs whose vertices are
// points in 3-D space and whose edges cost the straight-line distance
// between their endpoints.
//
// What is pathmap?
//
//	A small, dependency-light library that brings together:
//		• Points: comparable (x, y, z) values with the Euclidean metric
//		• Construction: a chainable Builder that freezes into an immutable Graph
//		• Shortest paths: Dijkstra with a linear scan or a B-tree frontier
//		• Routes: a single-pass Path you pull points from, source first
//		• Generators: grids, lattices, rings, wheels, Platonic solids, random scatter
//		• Observability: slog logging and Prometheus metrics, both opt-in
//
// Why pathmap?
//
//   - Geometry is the weight – no weight bookkeeping, edges cost what they span
//   - Immutable after Build – share one Graph across goroutines freely
//   - Deterministic – equal-length routes always resolve the same way
//   - Errors, not panics – unknown points and bad input come back as sentinels
//
// Everything is organized under these subpackages:
//
//	point/    — Point value, Distance, r3.Vec interop
//	core/     — Builder, Graph, FindShortestPath, Distance
//	dijkstra/ — index-based Dijkstra search over any Topology
//	path/     — the consumable Path returned by queries
//	builder/  — deterministic spatial topology constructors
//	metrics/  — Collector interface, atomic and Prometheus implementations
//
// Quick ASCII example:
//
//	(0,1,0)───(1,1,0)
//	   │          │
//	(0,0,0)───(1,0,0)
//
//	a unit square: the route (0,0,0) → (1,1,0) has length 2 and visits
//	(0,1,0) first, because it was registered before (1,0,0).
//
//	go get github.com/katalvlaran/pathmap
package pathmap
