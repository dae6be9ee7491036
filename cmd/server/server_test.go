package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hostelhub/hostelhub/internal/api/dashboard"
	"github.com/hostelhub/hostelhub/internal/api/reports"
	"github.com/hostelhub/hostelhub/internal/config"
	"github.com/hostelhub/hostelhub/internal/db"
	"github.com/hostelhub/hostelhub/internal/ratelimit"
	"github.com/hostelhub/hostelhub/internal/stats"
)

// The report handlers are initialized once per process, so every test here
// shares one database.
var sharedDB *db.DB

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "hostelhub-server")
	if err != nil {
		panic(err)
	}
	sharedDB, err = db.New(filepath.Join(dir, "test.db"))
	if err != nil {
		panic(err)
	}

	code := m.Run()

	sharedDB.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newTestServer(t *testing.T, limit int) http.Handler {
	t.Helper()
	database := sharedDB
	agg, err := stats.NewAggregator(database.Queries, stats.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}
	dashboard.InitHandlers(agg, database.Queries, 5*time.Second)
	reports.InitHandlers(agg, database.Queries, 5*time.Second)

	cfg, err := config.Parse([]byte("app:\n  name: test\n  port: 8080\n"))
	if err != nil {
		t.Fatalf("config.Parse: %v", err)
	}
	limiter := ratelimit.New(&ratelimit.Config{Limit: limit, Window: time.Minute})
	t.Cleanup(limiter.Close)

	return newServer(cfg, limiter).Handler
}

func TestRoutes(t *testing.T) {
	handler := newTestServer(t, 100)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"dashboard", http.MethodGet, "/api/v1/dashboard/stats", http.StatusOK},
		{"comprehensive", http.MethodGet, "/api/v1/reports/comprehensive?date_range=this_month", http.StatusOK},
		{"no snapshot yet", http.MethodGet, "/api/v1/reports/snapshots/latest", http.StatusNotFound},
		{"bad filter", http.MethodGet, "/api/v1/dashboard/stats?start_date=2026-03-10", http.StatusBadRequest},
		{"post rejected", http.MethodPost, "/api/v1/dashboard/stats", http.StatusMethodNotAllowed},
		{"metrics disabled", http.MethodGet, "/metrics", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("%s %s status = %d, want %d (body %q)", tt.method, tt.path, rec.Code, tt.want, rec.Body.String())
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Fatal("expected X-Request-ID header")
			}
		})
	}
}

func TestReportRoutesAreRateLimited(t *testing.T) {
	handler := newTestServer(t, 2)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
	}
	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want %d", last.Code, http.StatusTooManyRequests)
	}
	if last.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}

	// Health is not limited
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", rec.Code, http.StatusOK)
	}
}
