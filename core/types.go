// SPDX-License-Identifier: MIT
// Package: pathmap/core
//
// types.go — sentinel errors, functional options and the shared config.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (which point, which operation) is attached with %w.
//   • Option constructors panic on meaningless input; queries never panic.

package core

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/pathmap/dijkstra"
	"github.com/katalvlaran/pathmap/metrics"
	"github.com/katalvlaran/pathmap/point"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrUnknownVertex indicates Connect or a query referenced a point that
	// was never registered with AddVertex.
	ErrUnknownVertex = errors.New("core: vertex not found")

	// ErrInvalidPoint indicates AddVertex received a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("core: point has non-finite coordinate")
)

// unknownVertices wraps ErrUnknownVertex with the missing point(s).
func unknownVertices(missing ...point.Point) error {
	names := make([]string, len(missing))
	for i, p := range missing {
		names[i] = p.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownVertex, strings.Join(names, " and "))
}

// Option configures a Builder and the Graph it produces.
type Option func(*config)

// config is the single source of truth for graph knobs.
// Graphs copy it at Build time.
type config struct {
	strategy dijkstra.Strategy
	logger   *slog.Logger
	metrics  metrics.Collector
}

// newConfig applies opts over deterministic defaults:
// LinearScan selection, a discarding logger and no metrics.
func newConfig(opts ...Option) config {
	cfg := config{
		strategy: dijkstra.LinearScan,
		logger:   slog.New(slog.DiscardHandler),
		metrics:  metrics.NoopCollector{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrategy selects how queries pick the next vertex to settle.
// Panics on an unknown strategy.
func WithStrategy(s dijkstra.Strategy) Option {
	if !s.Valid() {
		panic(fmt.Sprintf("core: WithStrategy(%d): unknown strategy", int(s)))
	}
	return func(c *config) {
		c.strategy = s
	}
}

// WithLogger routes build and query logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics reports build and query metrics to m. Panics on nil.
func WithMetrics(m metrics.Collector) Option {
	if m == nil {
		panic("core: WithMetrics(nil)")
	}
	return func(c *config) {
		c.metrics = m
	}
}
