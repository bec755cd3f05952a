package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for the outcome label besides bfs.Outcome strings.
const (
	outcomeExploreLimit = "explore_limit"
	outcomeCanceled     = "canceled"
	outcomeError        = "error"
)

type metrics struct {
	// searches counts completed searches. Labels: outcome
	searches *prometheus.CounterVec
	// duration measures uncached search latency.
	duration prometheus.Histogram
	// explored tracks how many people a search expanded.
	explored prometheus.Histogram

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "degrees",
			Subsystem: "search",
			Name:      "total",
			Help:      "Shortest-path searches by outcome",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "degrees",
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Uncached shortest-path search latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}),
		explored: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "degrees",
			Subsystem: "search",
			Name:      "explored_people",
			Help:      "People expanded per uncached search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: "degrees",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Path cache hits",
		}),
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: "degrees",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Path cache misses",
		}),
	}
}
