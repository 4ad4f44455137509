// Package http exposes the dashboard over HTTP: the embedded single-page UI,
// the JSON API it talks to, and the health/readiness/metrics endpoints.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ficus22/meteo-dashboard/internal/dashboard"
	"github.com/ficus22/meteo-dashboard/internal/observability"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server serves the dashboard UI, its API, and the operational endpoints.
type Server struct {
	httpServer *http.Server
	dash       *dashboard.Dashboard
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates an HTTP server over a dashboard.
func NewServer(addr string, dash *dashboard.Dashboard, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		dash:    dash,
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("GET /api/columns", s.instrument("/api/columns", s.handleColumns))
	mux.Handle("GET /api/summary", s.instrument("/api/summary", s.handleSummary))
	mux.Handle("GET /api/table", s.instrument("/api/table", s.handleTable))
	mux.Handle("GET /api/plots", s.instrument("/api/plots", s.handlePlots))
	mux.Handle("GET /api/plots/single.png", s.instrument("/api/plots/single.png", s.handleSinglePNG))
	mux.Handle("GET /api/plots/grouped.png", s.instrument("/api/plots/grouped.png", s.handleGroupedPNG))

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(dash))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
