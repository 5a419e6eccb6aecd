// SPDX-License-Identifier: MIT
// Package: pathmap/builder
//
// variants_platonic.go — canonical coordinates for the five Platonic solids.
//
// Design:
//   • Vertices are the standard origin-centred coordinate sets.
//   • Edges are not tabulated: they join exactly the vertex pairs at the
//     minimum pairwise distance, which for a Platonic solid is its edge length.
//
// Determinism:
//   • Vertex order is fixed by the tables below.
//   • Edges are emitted lexicographically by (i, j) with i < j.

package builder

import (
	"math"

	"github.com/katalvlaran/pathmap/point"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

// platonicVertices returns unit coordinates for name, or nil if unknown.
func platonicVertices(name PlatonicName) []point.Point {
	switch name {
	case Tetrahedron:
		return []point.Point{
			{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1},
		}
	case Cube:
		pts := make([]point.Point, 0, 8)
		for _, x := range signs(1) {
			for _, y := range signs(1) {
				for _, z := range signs(1) {
					pts = append(pts, point.New(x, y, z))
				}
			}
		}
		return pts
	case Octahedron:
		return []point.Point{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		}
	case Dodecahedron:
		pts := platonicVertices(Cube)
		inv := 1 / phi
		for _, a := range signs(inv) {
			for _, c := range signs(phi) {
				pts = append(pts,
					point.New(0, a, c),
					point.New(a, c, 0),
					point.New(c, 0, a),
				)
			}
		}
		return pts
	case Icosahedron:
		pts := make([]point.Point, 0, 12)
		for _, a := range signs(1) {
			for _, c := range signs(phi) {
				pts = append(pts,
					point.New(0, a, c),
					point.New(a, c, 0),
					point.New(c, 0, a),
				)
			}
		}
		return pts
	default:
		return nil
	}
}

func signs(v float64) [2]float64 { return [2]float64{v, -v} }

// shortestPairs returns every pair (i<j) whose distance equals the minimum
// pairwise distance within a relative tolerance.
func shortestPairs(pts []point.Point) [][2]int {
	const relTol = 1e-9

	minD := math.Inf(1)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			minD = math.Min(minD, point.Distance(pts[i], pts[j]))
		}
	}

	var pairs [][2]int
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if point.Distance(pts[i], pts[j])-minD <= relTol*minD {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}
