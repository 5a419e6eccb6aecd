package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector exports graph metrics through client_golang.
type PrometheusCollector struct {
	builds       *prometheus.CounterVec
	buildSize    *prometheus.GaugeVec
	queries      *prometheus.CounterVec
	queryLatency prometheus.Histogram
	settled      prometheus.Histogram
	hops         prometheus.Histogram
}

// NewPrometheusCollector creates the collector and registers its metrics on
// reg (prometheus.DefaultRegisterer if nil). namespace prefixes every name.
func NewPrometheusCollector(reg prometheus.Registerer, namespace string) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_builds_total",
			Help:      "Graph builds by status.",
		}, []string{"status"}),
		buildSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_last_build_size",
			Help:      "Vertex and edge counts of the last successful build.",
		}, []string{"kind"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shortest_path_queries_total",
			Help:      "Shortest-path queries by outcome.",
		}, []string{"outcome"}),
		queryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shortest_path_query_seconds",
			Help:      "Latency of shortest-path queries.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		settled: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shortest_path_settled_vertices",
			Help:      "Vertices finalized per query.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
		}),
		hops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shortest_path_hops",
			Help:      "Edges on the returned route.",
			Buckets:   prometheus.LinearBuckets(0, 1, 16),
		}),
	}

	for _, m := range []prometheus.Collector{c.builds, c.buildSize, c.queries, c.queryLatency, c.settled, c.hops} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordBuild implements Collector.
func (c *PrometheusCollector) RecordBuild(stats BuildStats, err error) {
	if err != nil {
		c.builds.WithLabelValues("error").Inc()
		return
	}
	c.builds.WithLabelValues("ok").Inc()
	c.buildSize.WithLabelValues("vertices").Set(float64(stats.Vertices))
	c.buildSize.WithLabelValues("edges").Set(float64(stats.Edges))
}

// RecordQuery implements Collector.
func (c *PrometheusCollector) RecordQuery(stats QueryStats, err error) {
	outcome := stats.Outcome(err)
	c.queries.WithLabelValues(outcome).Inc()
	c.queryLatency.Observe(stats.Duration.Seconds())
	if outcome == OutcomeError {
		return
	}
	c.settled.Observe(float64(stats.Settled))
	c.hops.Observe(float64(stats.Hops))
}
