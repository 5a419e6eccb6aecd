// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for pathmap/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Provide an exhaustive-search oracle for route optimality on tiny graphs.
//   - Keep goroutine-side helpers free of *testing.T.

package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/path"
	"github.com/katalvlaran/pathmap/point"
)

// squarePoints are the six vertices of the reference scenario: a unit square
// in the y=0 plane (0..3), the midpoint of one side (4) and the center (5).
var squarePoints = []point.Point{
	point.New(-1, 0, -1),
	point.New(-1, 0, +1),
	point.New(+1, 0, +1),
	point.New(+1, 0, -1),
	point.New(0, 0, +1),
	point.New(0, 0, 0),
}

// squareEdges index into squarePoints.
var squareEdges = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {3, 4}, {4, 5}}

// buildGraph registers pts, connects edges by index and builds.
func buildGraph(t *testing.T, pts []point.Point, edges [][2]int, opts ...core.Option) *core.Graph {
	t.Helper()

	b := core.NewBuilder(opts...)
	for _, p := range pts {
		b.AddVertex(p)
	}
	for _, e := range edges {
		b.Connect(pts[e[0]], pts[e[1]])
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// drain consumes a path into a slice.
func drain(t *testing.T, p *path.Path) []point.Point {
	t.Helper()

	var out []point.Point
	for p.HasNext() {
		pt, err := p.Next()
		require.NoError(t, err)
		out = append(out, pt)
	}

	return out
}

// routeLength sums consecutive Euclidean distances.
func routeLength(pts []point.Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += point.Distance(pts[i-1], pts[i])
	}

	return total
}

// exhaustiveShortest enumerates every simple route between src and dst by
// DFS and returns the minimum length, +Inf when none exists.
func exhaustiveShortest(n int, edges [][2]int, pts []point.Point, src, dst int) float64 {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		if e[0] != e[1] {
			adj[e[1]] = append(adj[e[1]], e[0])
		}
	}

	best := math.Inf(1)
	onPath := make([]bool, n)
	var dfs func(u int, acc float64)
	dfs = func(u int, acc float64) {
		if u == dst {
			best = math.Min(best, acc)
			return
		}
		onPath[u] = true
		for _, v := range adj[u] {
			if !onPath[v] {
				dfs(v, acc+point.Distance(pts[u], pts[v]))
			}
		}
		onPath[u] = false
	}
	dfs(src, 0)

	return best
}

// randomFixture returns n distinct integer-lattice points and random edges.
func randomFixture(rng *rand.Rand, n int, p float64) ([]point.Point, [][2]int) {
	seen := make(map[point.Point]bool, n)
	pts := make([]point.Point, 0, n)
	for len(pts) < n {
		q := point.New(float64(rng.Intn(7)-3), float64(rng.Intn(7)-3), float64(rng.Intn(7)-3))
		if !seen[q] {
			seen[q] = true
			pts = append(pts, q)
		}
	}

	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, [2]int{u, v})
			}
		}
	}

	return pts, edges
}
