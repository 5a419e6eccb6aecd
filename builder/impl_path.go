// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • Vertex i sits at origin + scale·(i, 0, 0).
//   • Edges i — i+1 for i=0..n-2, emitted in increasing i.
//
// Complexity: O(n) time and space.

package builder

import (
	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/point"
)

// Path returns a Constructor that builds the straight path P_n along +X.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		pts := make([]point.Point, n)
		for i := range pts {
			pts[i] = cfg.at(float64(i), 0, 0)
		}
		edges := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}

		return emit(MethodPath, b, pts, edges)
	}
}
