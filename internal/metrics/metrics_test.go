package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordersBeforeInitAreNoops(t *testing.T) {
	if aggregationsTotal != nil {
		t.Skip("collectors already registered by another test")
	}
	ObserveAggregation("dashboard", nil, time.Millisecond)
	ObserveHTTPRequest("/health", 200)
	IncSnapshot(errors.New("boom"))
	IncRateLimited("/api/v1/dashboard/stats")
}

func TestInitRegistersCollectors(t *testing.T) {
	Init(nil)
	Init(nil)

	ObserveAggregation("dashboard", nil, 10*time.Millisecond)
	ObserveAggregation("dashboard", errors.New("boom"), 10*time.Millisecond)
	ObserveAggregation("dashboard", errors.New("boom"), 10*time.Millisecond)

	if got := testutil.ToFloat64(aggregationsTotal.WithLabelValues("dashboard", resultSuccess)); got != 1 {
		t.Fatalf("expected 1 successful aggregation, got %v", got)
	}
	if got := testutil.ToFloat64(aggregationsTotal.WithLabelValues("dashboard", resultError)); got != 2 {
		t.Fatalf("expected 2 failed aggregations, got %v", got)
	}

	ObserveHTTPRequest("/health", 200)
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/health", "200")); got != 1 {
		t.Fatalf("expected 1 /health request, got %v", got)
	}

	IncRateLimited("")
	if got := testutil.ToFloat64(rateLimitedTotal.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected unknown route label, got %v", got)
	}
}
