package core_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathmap/core"
	"github.com/katalvlaran/pathmap/metrics"
	"github.com/katalvlaran/pathmap/point"
)

func TestMetrics_BasicCollector(t *testing.T) {
	var c metrics.BasicCollector
	lonely := point.New(5, 5, 5)
	pts := append(append([]point.Point{}, squarePoints...), lonely)
	g := buildGraph(t, pts, squareEdges, core.WithMetrics(&c))

	_, err := g.FindShortestPath(squarePoints[0], squarePoints[5])
	require.NoError(t, err)
	_, err = g.FindShortestPath(squarePoints[0], lonely)
	require.NoError(t, err)
	_, err = g.FindShortestPath(point.New(9, 9, 9), lonely)
	require.Error(t, err)

	assert.EqualValues(t, 1, c.Builds.Load())
	assert.EqualValues(t, 3, c.Queries.Load())
	assert.EqualValues(t, 1, c.Unreachable.Load())
	assert.EqualValues(t, 1, c.QueryErrors.Load())
}

func TestMetrics_BuildErrorIsRecorded(t *testing.T) {
	var c metrics.BasicCollector
	_, err := core.NewBuilder(core.WithMetrics(&c)).
		Connect(point.Point{}, point.New(1, 1, 1)).
		Build()
	require.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.EqualValues(t, 1, c.BuildErrors.Load())
}

func TestMetrics_Prometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewPrometheusCollector(reg, "pathmap")
	require.NoError(t, err)

	g := buildGraph(t, squarePoints, squareEdges, core.WithMetrics(c))
	for i := 0; i < 3; i++ {
		_, err = g.FindShortestPath(squarePoints[0], squarePoints[5])
		require.NoError(t, err)
	}

	expected := `
# HELP pathmap_shortest_path_queries_total Shortest-path queries by outcome.
# TYPE pathmap_shortest_path_queries_total counter
pathmap_shortest_path_queries_total{outcome="found"} 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pathmap_shortest_path_queries_total"))
}

func TestLogger_TracesQueries(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := buildGraph(t, squarePoints, squareEdges, core.WithLogger(logger))

	buf.Reset()
	_, err := g.FindShortestPath(squarePoints[0], squarePoints[5])
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shortest path computed", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, true, rec["reached"])
	assert.EqualValues(t, 2, rec["hops"])
	assert.Equal(t, "linear-scan", rec["strategy"])
	assert.Equal(t, "(-1, 0, -1)", rec["source"])
}

func TestLogger_WarnsOnRejectedInput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	core.NewBuilder(core.WithLogger(logger)).Connect(point.Point{}, point.Point{})
	assert.Contains(t, buf.String(), "graph builder rejected input")
	assert.Contains(t, buf.String(), "vertex not found")
}
