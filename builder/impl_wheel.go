// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ MinWheelNodes (else ErrTooFewVertices).
//   • Vertex 0 is the hub at origin; vertices 1..n-1 form a rim cycle of
//     radius scale.
//   • Edges: rim i — i+1 (cyclic) first, then spokes hub — i.
//
// Complexity: O(n) time and space.

package builder

import (
	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/point"
)

// Wheel returns a Constructor that builds W_n = C_{n-1} plus a hub.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		rim := n - 1
		pts := append([]point.Point{cfg.at(0, 0, 0)}, ring(cfg, rim)...)
		edges := make([][2]int, 0, 2*rim)
		for i := 0; i < rim; i++ {
			edges = append(edges, [2]int{1 + i, 1 + (i+1)%rim})
		}
		for i := 1; i <= rim; i++ {
			edges = append(edges, [2]int{0, i})
		}

		return emit(MethodWheel, b, pts, edges)
	}
}
