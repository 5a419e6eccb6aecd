// SPDX-License-Identifier: MIT
// Package: pathmap/point
//
// point.go — immutable 3-D coordinate value and the Euclidean metric.

// Package point defines Point, the comparable 3-D coordinate that keys
// every vertex of a pathmap graph, and the Euclidean distance used as the
// edge weight between two points.
//
// Point is a plain value: copy it freely, compare it with ==, use it as a
// map key. Two points with equal coordinates are interchangeable.
//
// The metric is delegated to gonum's spatial/r3 package so the same vector
// arithmetic is shared with callers that already work in r3.Vec.
package point

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is an immutable coordinate in 3-D space.
type Point struct {
	X float64
	Y float64
	Z float64
}

// New returns the point (x, y, z).
func New(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// FromVec converts a gonum r3.Vec into a Point.
func FromVec(v r3.Vec) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec returns p as a gonum r3.Vec.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Distance returns the straight-line distance between a and b.
// The result is non-negative for finite inputs; NaN propagates.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return r3.Norm(r3.Sub(a.Vec(), b.Vec()))
}

// DistanceTo is the method form of Distance.
func (p Point) DistanceTo(q Point) float64 {
	return Distance(p, q)
}

// IsFinite reports whether every coordinate is neither NaN nor ±Inf.
// NaN coordinates break ==, so such points can never be looked up again.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// String renders the point as "(x, y, z)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// LogValue implements slog.LogValuer so every handler renders the same text.
func (p Point) LogValue() slog.Value {
	return slog.StringValue(p.String())
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
