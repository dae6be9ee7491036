// cmd/server/server.go
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hostelhub/hostelhub/internal/api"
	"github.com/hostelhub/hostelhub/internal/api/dashboard"
	"github.com/hostelhub/hostelhub/internal/api/reports"
	"github.com/hostelhub/hostelhub/internal/config"
	"github.com/hostelhub/hostelhub/internal/ratelimit"
)

func newServer(cfg *config.Config, limiter *ratelimit.Limiter) *http.Server {
	router := http.NewServeMux()

	// WithMetrics must sit directly on the mux to read the matched pattern.
	handler := api.ChainMiddleware(
		router,
		api.WithMetrics,
		api.WithRecovery,
		api.WithLogging,
		api.WithRequestID,
	)

	registerRoutes(router, cfg, limiter)

	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Reports.QueryTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config, limiter *ratelimit.Limiter) {
	limited := func(route string, h http.HandlerFunc) http.Handler {
		return limiter.Middleware(route, cfg.Reports.TrustProxy)(h)
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.Features.EnableMetrics {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	// Report routes
	mux.Handle("GET /api/v1/dashboard/stats", limited("/api/v1/dashboard/stats", dashboard.HandleDashboardStats))
	mux.Handle("GET /api/v1/reports/comprehensive", limited("/api/v1/reports/comprehensive", reports.HandleComprehensiveReport))
	mux.Handle("GET /api/v1/reports/snapshots/latest", limited("/api/v1/reports/snapshots/latest", reports.HandleLatestSnapshot))
}
