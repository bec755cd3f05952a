// Package service wraps the cast graph and the search engine behind the
// two operations callers use: FindShortestPath and NeighborsOf.
//
// Results are cached per (source, target) pair in an in-process LRU and
// concurrent identical misses share one search. Every search is traced
// with OpenTelemetry and counted in Prometheus metrics.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/core"
)

// ErrNilGraph is returned by New when no graph is supplied.
var ErrNilGraph = errors.New("service: graph is nil")

// Limits bound a single search. Zero values disable each limit.
type Limits struct {
	MaxExplored int
	MaxDepth    int
	Timeout     time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRegisterer registers metrics on reg. Defaults to a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Service) { s.reg = reg }
}

// WithTracer sets the tracer. Defaults to the global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// WithLimits applies search limits to every call.
func WithLimits(l Limits) Option {
	return func(s *Service) { s.limits = l }
}

// WithCacheSize sets the path cache capacity; 0 disables caching.
func WithCacheSize(n int) Option {
	return func(s *Service) { s.cacheSize = n }
}

type pairKey struct{ source, target string }

// Service is safe for concurrent use.
type Service struct {
	graph  *core.Graph
	limits Limits

	cacheSize int
	cache     *lru.Cache[pairKey, bfs.PathResult]
	group     singleflight.Group

	log     *zap.Logger
	reg     prometheus.Registerer
	tracer  trace.Tracer
	metrics *metrics
}

// New returns a Service over g.
func New(g *core.Graph, opts ...Option) (*Service, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := &Service{
		graph:     g,
		cacheSize: 1024,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cacheSize < 0 {
		return nil, fmt.Errorf("service: cache size %d must be >= 0", s.cacheSize)
	}
	if s.cacheSize > 0 {
		c, err := lru.New[pairKey, bfs.PathResult](s.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("service: cache: %w", err)
		}
		s.cache = c
	}
	if s.reg == nil {
		s.reg = prometheus.NewRegistry()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("degrees.service")
	}
	s.metrics = newMetrics(s.reg)

	return s, nil
}

// Graph returns the underlying graph.
func (s *Service) Graph() *core.Graph { return s.graph }

// NeighborsOf returns the (movie, person) pairs reachable in one hop from
// personID, including personID itself for each of its movies.
func (s *Service) NeighborsOf(personID string) ([]core.Neighbor, error) {
	return s.graph.Neighbors(personID)
}

// FindShortestPath returns the shortest co-star chain from sourceID to
// targetID. Errors are those of bfs.ShortestPath, plus the context error
// when the configured timeout or ctx expires.
func (s *Service) FindShortestPath(ctx context.Context, sourceID, targetID string) (bfs.PathResult, error) {
	ctx, span := s.tracer.Start(ctx, "service.FindShortestPath",
		trace.WithAttributes(
			attribute.String("source", sourceID),
			attribute.String("target", targetID),
		))
	defer span.End()

	key := pairKey{source: sourceID, target: targetID}
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			s.metrics.cacheHits.Inc()
			span.SetAttributes(attribute.Bool("cache_hit", true), attribute.String("outcome", cached.Outcome.String()))
			return clone(cached), nil
		}
		s.metrics.cacheMisses.Inc()
	}

	v, err, shared := s.group.Do(sourceID+"\x00"+targetID, func() (any, error) {
		if s.cache != nil {
			if cached, ok := s.cache.Get(key); ok {
				return cached, nil
			}
		}
		res, err := s.search(ctx, sourceID, targetID)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Add(key, res)
		}
		return res, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return bfs.PathResult{}, err
	}
	res, ok := v.(bfs.PathResult)
	if !ok {
		err := fmt.Errorf("service: unexpected singleflight result %T", v)
		span.SetStatus(codes.Error, err.Error())
		return bfs.PathResult{}, err
	}
	span.SetAttributes(
		attribute.Bool("cache_hit", false),
		attribute.Bool("shared", shared),
		attribute.String("outcome", res.Outcome.String()),
		attribute.Int("degrees", res.Degrees()),
		attribute.Int("explored", res.Explored),
	)

	return clone(res), nil
}

// search runs one uncached search under the configured limits.
func (s *Service) search(ctx context.Context, sourceID, targetID string) (bfs.PathResult, error) {
	if s.limits.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.limits.Timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := bfs.ShortestPath(s.graph, sourceID, targetID,
		bfs.WithContext(ctx),
		bfs.WithMaxExplored(s.limits.MaxExplored),
		bfs.WithMaxDepth(s.limits.MaxDepth),
	)
	elapsed := time.Since(start)

	outcome := res.Outcome.String()
	switch {
	case err == nil:
	case errors.Is(err, bfs.ErrExploreLimit):
		outcome = outcomeExploreLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = outcomeCanceled
	default:
		outcome = outcomeError
	}
	s.metrics.searches.WithLabelValues(outcome).Inc()
	s.metrics.duration.Observe(elapsed.Seconds())
	s.metrics.explored.Observe(float64(res.Explored))

	fields := []zap.Field{
		zap.String("source", sourceID),
		zap.String("target", targetID),
		zap.String("outcome", outcome),
		zap.Int("explored", res.Explored),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		s.log.Info("search failed", append(fields, zap.Error(err))...)
		return res, err
	}
	s.log.Debug("search finished", append(fields, zap.Int("degrees", res.Degrees()))...)

	return res, nil
}

func clone(r bfs.PathResult) bfs.PathResult {
	if r.Steps != nil {
		steps := make([]bfs.Step, len(r.Steps))
		copy(steps, r.Steps)
		r.Steps = steps
	}

	return r
}
