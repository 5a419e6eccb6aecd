// Package core_test provides benchmarks for building and querying graphs.
package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/dijkstra"
	"github.com/katalvlaran/pathmap/point"
)

// lattice returns an n×n×1 grid of points with 4-neighborhood edges.
func lattice(n int) ([]point.Point, [][2]int) {
	pts := make([]point.Point, 0, n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			pts = append(pts, point.New(float64(x), float64(y), 0))
		}
	}
	var edges [][2]int
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			i := x*n + y
			if x+1 < n {
				edges = append(edges, [2]int{i, i + n})
			}
			if y+1 < n {
				edges = append(edges, [2]int{i, i + 1})
			}
		}
	}
	return pts, edges
}

// BenchmarkBuild measures freezing a 32×32 lattice.
func BenchmarkBuild(b *testing.B) {
	pts, edges := lattice(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bl := core.NewBuilder()
		for _, p := range pts {
			bl.AddVertex(p)
		}
		for _, e := range edges {
			bl.Connect(pts[e[0]], pts[e[1]])
		}
		_, _ = bl.Build()
	}
}

// BenchmarkFindShortestPath measures corner-to-corner queries per strategy.
func BenchmarkFindShortestPath(b *testing.B) {
	for _, n := range []int{8, 32} {
		pts, edges := lattice(n)
		for _, s := range []dijkstra.Strategy{dijkstra.LinearScan, dijkstra.OrderedFrontier} {
			bl := core.NewBuilder(core.WithStrategy(s))
			for _, p := range pts {
				bl.AddVertex(p)
			}
			for _, e := range edges {
				bl.Connect(pts[e[0]], pts[e[1]])
			}
			g, err := bl.Build()
			if err != nil {
				b.Fatal(err)
			}
			rng := rand.New(rand.NewSource(1))

			b.Run(fmt.Sprintf("n=%d/%s", n*n, s), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					src, dst := pts[rng.Intn(len(pts))], pts[rng.Intn(len(pts))]
					_, _ = g.FindShortestPath(src, dst)
				}
			})
		}
	}
}
