// SPDX-License-Identifier: MIT
// Package: pathmap/path
//
// path.go — the consumable route returned by a shortest-path query.

// Package path defines Path, the result of a shortest-path query: an
// ordered, forward-only sequence of points from source to destination
// inclusive, or an empty sequence when no route exists.
//
// A Path is pulled one point at a time with HasNext/Next and cannot be
// rewound. Pulling past the end returns ErrExhaustedPath instead of
// panicking, so callers that skip HasNext still get a clean error.
//
// A Path is not safe for concurrent consumption.
package path

import (
	"errors"
	"strings"

	"github.com/katalvlaran/pathmap/point"
)

// ErrExhaustedPath is returned by Next once every point has been consumed.
var ErrExhaustedPath = errors.New("path: no more points")

// Path is an ordered, forward-only sequence of points.
type Path struct {
	points []point.Point
	length float64
	cursor int
}

// New returns a Path over a copy of points with the given total length.
func New(points []point.Point, length float64) *Path {
	cp := make([]point.Point, len(points))
	copy(cp, points)

	return &Path{points: cp, length: length}
}

// Empty returns the Path of an unreachable destination.
func Empty() *Path {
	return &Path{}
}

// HasNext reports whether Next would return a point.
func (p *Path) HasNext() bool {
	return p.cursor < len(p.points)
}

// Next returns the next point and advances the cursor.
// Returns ErrExhaustedPath when the sequence is used up.
func (p *Path) Next() (point.Point, error) {
	if !p.HasNext() {
		return point.Point{}, ErrExhaustedPath
	}
	pt := p.points[p.cursor]
	p.cursor++

	return pt, nil
}

// Len returns the total number of points, consumed or not.
func (p *Path) Len() int { return len(p.points) }

// Remaining returns the number of points Next has yet to yield.
func (p *Path) Remaining() int { return len(p.points) - p.cursor }

// IsEmpty reports whether the path has no points at all (unreachable).
func (p *Path) IsEmpty() bool { return len(p.points) == 0 }

// Length returns the sum of Euclidean distances between consecutive points.
func (p *Path) Length() float64 { return p.length }

// String renders the full route as "a -> b -> c", independent of the cursor.
func (p *Path) String() string {
	if p.IsEmpty() {
		return "<empty>"
	}
	var sb strings.Builder
	for i, pt := range p.points {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(pt.String())
	}

	return sb.String()
}
