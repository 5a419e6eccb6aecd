// Package metrics defines the operational metrics hooks of pathmap graphs
// and ships three collectors: NoopCollector, BasicCollector (in-memory
// atomics) and PrometheusCollector.
//
// A core.Graph calls its Collector once per Build and once per query.
// Collectors must be safe for concurrent use.
package metrics

import (
	"sync/atomic"
	"time"
)

// Query outcome labels.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// BuildStats describes one Builder.Build call.
type BuildStats struct {
	Vertices int
	Edges    int
	Duration time.Duration
}

// QueryStats describes one shortest-path query.
type QueryStats struct {
	// Settled is the number of vertices the search finalized.
	Settled int
	// Hops is the number of edges on the returned route (0 if none).
	Hops int
	// Reached reports whether a route was found.
	Reached  bool
	Duration time.Duration
}

// Outcome classifies a query for labeling.
func (q QueryStats) Outcome(err error) string {
	switch {
	case err != nil:
		return OutcomeError
	case q.Reached:
		return OutcomeFound
	default:
		return OutcomeUnreachable
	}
}

// Collector receives graph metrics.
type Collector interface {
	// RecordBuild is called after each Build; err is nil on success.
	RecordBuild(stats BuildStats, err error)
	// RecordQuery is called after each shortest-path query; err is nil on success.
	RecordQuery(stats QueryStats, err error)
}

// NoopCollector discards everything.
type NoopCollector struct{}

func (NoopCollector) RecordBuild(BuildStats, error) {}
func (NoopCollector) RecordQuery(QueryStats, error) {}

// BasicCollector keeps simple in-memory counters.
// Useful for tests and debugging without an external registry.
type BasicCollector struct {
	Builds        atomic.Int64
	BuildErrors   atomic.Int64
	Queries       atomic.Int64
	QueryErrors   atomic.Int64
	Unreachable   atomic.Int64
	SettledTotal  atomic.Int64
	QueryNanosSum atomic.Int64
}

// RecordBuild implements Collector.
func (b *BasicCollector) RecordBuild(_ BuildStats, err error) {
	b.Builds.Add(1)
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordQuery implements Collector.
func (b *BasicCollector) RecordQuery(stats QueryStats, err error) {
	b.Queries.Add(1)
	b.QueryNanosSum.Add(stats.Duration.Nanoseconds())
	switch stats.Outcome(err) {
	case OutcomeError:
		b.QueryErrors.Add(1)
		return
	case OutcomeUnreachable:
		b.Unreachable.Add(1)
	}
	b.SettledTotal.Add(int64(stats.Settled))
}
