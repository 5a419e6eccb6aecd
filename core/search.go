// SPDX-License-Identifier: MIT
// Package: pathmap/core
//
// search.go — shortest-path queries on a built Graph.

package core

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/pathmap/dijkstra"
	"github.com/katalvlaran/pathmap/metrics"
	"github.com/katalvlaran/pathmap/path"
	"github.com/katalvlaran/pathmap/point"
)

// route is the outcome of one query: vertex indices source→target
// (nil when unreachable) and the total length.
type route struct {
	hops   []int
	length float64
}

// FindShortestPath returns the minimum-length route from src to dst, both
// endpoints included, edge lengths being Euclidean distances.
//
// Behavior:
//   - src or dst unknown: ErrUnknownVertex naming the missing point(s).
//   - src == dst: a Path holding just that point.
//   - no route: an empty Path and a nil error.
//
// Among equally short routes, the one found by settling lower-index
// (earlier registered) vertices first wins.
// Complexity: O(V² + E) with LinearScan, O((V+E) log V) with OrderedFrontier.
func (g *Graph) FindShortestPath(src, dst point.Point) (*path.Path, error) {
	r, err := g.query(src, dst)
	if err != nil {
		return nil, err
	}
	if r.hops == nil {
		return path.Empty(), nil
	}

	pts := make([]point.Point, len(r.hops))
	for i, v := range r.hops {
		pts[i] = g.points[v]
	}

	return path.New(pts, r.length), nil
}

// Distance returns the length of the shortest route from src to dst,
// 0 when src == dst and +Inf when dst is unreachable.
func (g *Graph) Distance(src, dst point.Point) (float64, error) {
	r, err := g.query(src, dst)
	if err != nil {
		return 0, err
	}

	return r.length, nil
}

// query runs one independent search and reports it to the logger and
// metrics collector.
func (g *Graph) query(src, dst point.Point) (route, error) {
	start := time.Now()
	log := g.cfg.logger.With("source", src, "target", dst)

	si, di, err := g.lookup(src, dst)
	if err != nil {
		g.cfg.metrics.RecordQuery(metrics.QueryStats{Duration: time.Since(start)}, err)
		log.Warn("shortest path query rejected", "error", err)
		return route{}, err
	}

	res, err := dijkstra.Search(g.topo,
		dijkstra.Source(si),
		dijkstra.Target(di),
		dijkstra.WithStrategy(g.cfg.strategy),
	)
	if err != nil {
		err = fmt.Errorf("core: search %s→%s: %w", src, dst, err)
		g.cfg.metrics.RecordQuery(metrics.QueryStats{Duration: time.Since(start)}, err)
		log.Error("shortest path search failed", "error", err)
		return route{}, err
	}

	r := route{hops: res.PathTo(di), length: math.Inf(1)}
	stats := metrics.QueryStats{Settled: res.Settled, Duration: time.Since(start)}
	if r.hops != nil {
		r.length = res.Dist[di]
		stats.Reached = true
		stats.Hops = len(r.hops) - 1
	}

	g.cfg.metrics.RecordQuery(stats, nil)
	attrs := []any{
		"strategy", g.cfg.strategy.String(),
		"reached", stats.Reached,
		"hops", stats.Hops,
		"settled", stats.Settled,
	}
	if stats.Reached {
		attrs = append(attrs, "length", r.length)
	}
	log.Debug("shortest path computed", attrs...)

	return r, nil
}
