package core_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/dijkstra"
	"github.com/katalvlaran/pathmap/path"
	"github.com/katalvlaran/pathmap/point"
)

var strategies = []dijkstra.Strategy{dijkstra.LinearScan, dijkstra.OrderedFrontier}

func TestFindShortestPath_SquareRoutesThroughMidpoint(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			g := buildGraph(t, squarePoints, squareEdges, core.WithStrategy(s))

			p, err := g.FindShortestPath(squarePoints[0], squarePoints[5])
			require.NoError(t, err)
			require.Equal(t, 3, p.Len())
			assert.InDelta(t, math.Sqrt(5)+1, p.Length(), 1e-12)

			got := drain(t, p)
			assert.Equal(t, []point.Point{squarePoints[0], squarePoints[4], squarePoints[5]}, got)
		})
	}
}

func TestFindShortestPath_SourceEqualsDestination(t *testing.T) {
	g := buildGraph(t, squarePoints, squareEdges)
	for _, v := range squarePoints {
		p, err := g.FindShortestPath(v, v)
		require.NoError(t, err)
		assert.Equal(t, []point.Point{v}, drain(t, p))
		assert.Zero(t, p.Length())
	}
}

func TestFindShortestPath_IsolatedVertexIsUnreachable(t *testing.T) {
	lonely := point.New(10, 10, 10)
	pts := append(append([]point.Point{}, squarePoints...), lonely)
	for _, s := range strategies {
		g := buildGraph(t, pts, squareEdges, core.WithStrategy(s))
		for _, v := range squarePoints {
			p, err := g.FindShortestPath(lonely, v)
			require.NoError(t, err, "unreachable is not an error")
			assert.True(t, p.IsEmpty())
			assert.False(t, p.HasNext())

			_, err = p.Next()
			assert.ErrorIs(t, err, path.ErrExhaustedPath)

			p, err = g.FindShortestPath(v, lonely)
			require.NoError(t, err)
			assert.True(t, p.IsEmpty())
		}
	}
}

func TestFindShortestPath_UnknownVertex(t *testing.T) {
	g := buildGraph(t, squarePoints, squareEdges)
	ghost, phantom := point.New(9, 9, 9), point.New(-9, -9, -9)

	_, err := g.FindShortestPath(ghost, squarePoints[0])
	require.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.Contains(t, err.Error(), ghost.String())

	_, err = g.FindShortestPath(squarePoints[0], phantom)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.Contains(t, err.Error(), phantom.String())

	_, err = g.FindShortestPath(ghost, phantom)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.Contains(t, err.Error(), ghost.String())
	assert.Contains(t, err.Error(), phantom.String())

	_, err = g.Distance(ghost, ghost)
	require.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestFindShortestPath_RepeatedQueriesAgree(t *testing.T) {
	g := buildGraph(t, squarePoints, squareEdges)

	first, err := g.FindShortestPath(squarePoints[1], squarePoints[3])
	require.NoError(t, err)
	want := drain(t, first)

	// An unrelated query in between must not leak state.
	_, err = g.FindShortestPath(squarePoints[5], squarePoints[2])
	require.NoError(t, err)

	second, err := g.FindShortestPath(squarePoints[1], squarePoints[3])
	require.NoError(t, err)
	assert.Equal(t, want, drain(t, second))
}

func TestFindShortestPath_TieBreakFollowsRegistrationOrder(t *testing.T) {
	// 1→0→3 and 1→2→3 both have length 4; 0 is registered first.
	pts := []point.Point{
		point.New(0, 0, 0),
		point.New(2, 0, 0),
		point.New(2, 2, 0),
		point.New(0, 2, 0),
	}
	edges := [][2]int{{1, 2}, {2, 3}, {1, 0}, {0, 3}}
	for _, s := range strategies {
		g := buildGraph(t, pts, edges, core.WithStrategy(s))
		p, err := g.FindShortestPath(pts[1], pts[3])
		require.NoError(t, err)
		assert.Equal(t, []point.Point{pts[1], pts[0], pts[3]}, drain(t, p), s.String())
	}
}

func TestDistance(t *testing.T) {
	lonely := point.New(4, 4, 4)
	pts := append(append([]point.Point{}, squarePoints...), lonely)
	g := buildGraph(t, pts, squareEdges)

	d, err := g.Distance(squarePoints[0], squarePoints[5])
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5)+1, d, 1e-12)

	d, err = g.Distance(squarePoints[2], squarePoints[2])
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = g.Distance(lonely, squarePoints[0])
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

// TestFindShortestPath_MatchesExhaustiveSearch checks, on small random
// graphs, that every returned route is made of real edges, is no longer than
// any simple route found by brute force, and that both strategies agree.
func TestFindShortestPath_MatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 80; round++ {
		n := 1 + rng.Intn(7)
		pts, edges := randomFixture(rng, n, 0.45)
		lin := buildGraph(t, pts, edges)
		ord := buildGraph(t, pts, edges, core.WithStrategy(dijkstra.OrderedFrontier))

		src, dst := rng.Intn(n), rng.Intn(n)
		name := fmt.Sprintf("round %d: %d→%d", round, src, dst)

		p, err := lin.FindShortestPath(pts[src], pts[dst])
		require.NoError(t, err, name)
		q, err := ord.FindShortestPath(pts[src], pts[dst])
		require.NoError(t, err, name)

		got := drain(t, p)
		require.Equal(t, got, drain(t, q), name)

		want := exhaustiveShortest(n, edges, pts, src, dst)
		if math.IsInf(want, 1) {
			require.Empty(t, got, name)
			continue
		}

		require.NotEmpty(t, got, name)
		require.Equal(t, pts[src], got[0], name)
		require.Equal(t, pts[dst], got[len(got)-1], name)
		for i := 1; i < len(got); i++ {
			require.True(t, lin.HasEdge(got[i-1], got[i]), "%s: hop %d is not an edge", name, i)
		}
		require.InDelta(t, want, routeLength(got), 1e-9, name)
		require.InDelta(t, want, p.Length(), 1e-9, name)
	}
}
