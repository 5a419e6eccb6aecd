// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name, withCenter).
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron},
//     else ErrUnknownSolid.
//   • Shell vertices are placed at origin + scale·(canonical coordinates).
//   • If withCenter, vertex n (last) is the centre with spokes to every
//     shell vertex, added after the shell edges.
//
// Complexity: O(V²) edge discovery, V ≤ 20.

package builder

import (
	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/point"
)

// PlatonicSolid returns a Constructor that builds the chosen solid's
// skeleton, optionally with a central hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		unit := platonicVertices(name)
		if unit == nil {
			return builderErrorf(MethodPlatonicSolid, ErrUnknownSolid, "name=%s(%d)", name, int(name))
		}

		edges := shortestPairs(unit)
		pts := make([]point.Point, len(unit), len(unit)+1)
		for i, u := range unit {
			pts[i] = cfg.at(u.X, u.Y, u.Z)
		}
		if withCenter {
			hub := len(pts)
			pts = append(pts, cfg.at(0, 0, 0))
			for i := 0; i < hub; i++ {
				edges = append(edges, [2]int{hub, i})
			}
		}

		return emit(MethodPlatonicSolid, b, pts, edges)
	}
}
