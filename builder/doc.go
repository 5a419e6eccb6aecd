// Package builder provides reusable, deterministic spatial topology
// constructors that feed core.Builder: rings, paths, stars, wheels, complete
// graphs, planar grids, 3-D lattices, Platonic solids and random geometric
// graphs. They are the fixtures used by pathmap tests and benchmarks, and a
// quick way to assemble sample graphs for experiments.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG, the placement origin and the scale.
//   - Constructors (Constructor implementations):
//     – Path, Cycle, Star, Wheel, Complete, Grid, Lattice, PlatonicSolid, RandomSparse.
//   - Orchestration:
//     – BuildGraph:     resolve options, apply constructors in order, Build.
//   - Validation helpers:
//     – validateMin:         ensure integer ≥ minimum.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//
// Placement:
//
//	Every constructor lays its vertices out around cfg.origin, multiplied by
//	cfg.scale. Constructors applied to the same core.Builder that produce an
//	equal point share that vertex: the shapes are joined there and every
//	edge is kept. Use WithOrigin with separate Apply calls to keep shapes
//	disjoint.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs,
//     with a documented vertex order per constructor.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping the sentinels below with the
//     constructor name, e.g. "Cycle: n=2 < min=3: builder: parameter too small".
package builder
