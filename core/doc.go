// Package core provides the immutable spatial Graph of pathmap and its
// Builder: vertices are 3-D points, edges are undirected and weighted by
// the Euclidean distance between their endpoints.
//
// Lifecycle:
//
//	b := core.NewBuilder(opts...)        // collect
//	b.AddVertex(p)...                    // register every point first
//	b.Connect(p, q).Connect(q, r)        // chain undirected edges
//	g, err := b.Build()                  // freeze; sticky errors surface here
//	route, err := g.FindShortestPath(p, r)
//	for route.HasNext() { pt, _ := route.Next(); ... }
//
// Configuration Options (Option):
//
//	– WithStrategy(dijkstra.Strategy)
//	    LinearScan (default) or OrderedFrontier; both return identical routes.
//
//	– WithLogger(*slog.Logger)
//	    Build summaries and query traces at Debug, rejected input at Warn.
//	    Defaults to a discarding logger.
//
//	– WithMetrics(metrics.Collector)
//	    One RecordBuild per Build, one RecordQuery per query.
//	    Defaults to metrics.NoopCollector.
//
// Builder semantics:
//
//   - AddVertex on an existing point replaces the vertex and drops its edges.
//   - Connect requires both points to be registered (ErrUnknownVertex).
//   - Repeated Connect calls on a pair add parallel edges; no deduplication.
//   - The first error is sticky: later calls are no-ops and Build returns it.
//
// Graph semantics:
//
//   - Topology never changes after Build.
//   - FindShortestPath runs an independent Dijkstra search per call with
//     query-local state; results never leak between queries.
//   - Unreachable destinations yield an empty Path, not an error.
//   - Equal-length routes are resolved by settling earlier-registered
//     vertices first.
//
// Errors:
//
//	ErrUnknownVertex - Connect or a query referenced an unregistered point.
//	ErrInvalidPoint  - AddVertex received a NaN or infinite coordinate.
//
// Thread safety:
//
//   - Builder is not safe for concurrent use.
//   - Graph is safe for concurrent reads and queries.
package core
