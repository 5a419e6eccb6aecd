// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Vertices form a regular n-gon of radius scale in the XY plane.
//   • Edges i — (i+1)%n for i=0..n-1.
//
// Complexity: O(n) time and space.
//
// Determinism:
//   • Vertex i sits at angle 2πi/n; edge order follows i.

package builder

import "github.com/katalvlaran/pathmap/core"

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		edges := make([][2]int, n)
		for i := range edges {
			edges[i] = [2]int{i, (i + 1) % n}
		}

		return emit(MethodCycle, b, ring(cfg, n), edges)
	}
}
