// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ MinStarNodes (else ErrTooFewVertices).
//   • Vertex 0 is the center at origin; n-1 leaves lie on a circle of
//     radius scale around it.
//   • Edges center — leaf, in leaf order.
//
// Complexity: O(n) time and space.

package builder

import (
	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/point"
)

// Star returns a Constructor that builds the star S_n: one center, n-1 leaves.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		pts := append([]point.Point{cfg.at(0, 0, 0)}, ring(cfg, n-1)...)
		edges := make([][2]int, 0, n-1)
		for leaf := 1; leaf < n; leaf++ {
			edges = append(edges, [2]int{0, leaf})
		}

		return emit(MethodStar, b, pts, edges)
	}
}
