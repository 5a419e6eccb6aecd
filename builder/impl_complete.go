// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Vertices lie on a circle of radius scale, as in Cycle.
//   • Edges for every pair i<j, emitted lexicographically.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/pathmap/core"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		edges := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, [2]int{i, j})
			}
		}

		return emit(MethodComplete, b, ring(cfg, n), edges)
	}
}
