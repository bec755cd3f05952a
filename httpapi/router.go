// Package httpapi exposes the search service over HTTP with chi.
//
//	GET /health
//	GET /v1/people?name=
//	GET /v1/people/{id}
//	GET /v1/people/{id}/neighbors
//	GET /v1/path?source=&target=
//	GET /metrics
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/service"
)

// Option configures the router.
type Option func(*handler)

// WithLogger sets the request and error logger.
func WithLogger(log *zap.Logger) Option {
	return func(h *handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithMetrics mounts m at /metrics.
func WithMetrics(m http.Handler) Option {
	return func(h *handler) { h.metrics = m }
}

// NewRouter returns the HTTP surface over svc.
func NewRouter(svc *service.Service, opts ...Option) http.Handler {
	h := &handler{svc: svc, log: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.log))

	r.Get("/health", h.health)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics)
	}
	r.Route("/v1", func(r chi.Router) {
		r.Get("/people", h.findPeople)
		r.Get("/people/{id}", h.getPerson)
		r.Get("/people/{id}/neighbors", h.neighbors)
		r.Get("/path", h.path)
	})

	return r
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
