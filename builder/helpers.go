// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// helpers.go — shared emission helpers used by every constructor.

package builder

import (
	"math"

	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/point"
)

// emit registers pts in order, then connects every pair in edges (indices
// into pts). Points already on b are reused, so shapes that meet at a point
// merge there and keep each other's edges.
func emit(method string, b *core.Builder, pts []point.Point, edges [][2]int) error {
	for _, p := range pts {
		if !b.HasVertex(p) {
			b.AddVertex(p)
		}
	}
	for _, e := range edges {
		b.Connect(pts[e[0]], pts[e[1]])
	}

	return checkBuilder(method, b)
}

// ring places n points evenly on the unit circle in the XY plane,
// starting at angle 0 and turning counter-clockwise.
func ring(cfg builderConfig, n int) []point.Point {
	pts := make([]point.Point, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = cfg.at(math.Cos(theta), math.Sin(theta), 0)
	}

	return pts
}
