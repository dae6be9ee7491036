package dashboard

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/hostelhub/hostelhub/internal/db"
	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
	"github.com/hostelhub/hostelhub/internal/models"
	"github.com/hostelhub/hostelhub/internal/stats"
	"github.com/hostelhub/hostelhub/internal/testutil"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type brokenUsers struct {
	dbgen.Querier
}

func (brokenUsers) CountUsersByRole(context.Context) ([]dbgen.CountUsersByRoleRow, error) {
	return nil, errors.New("database is locked")
}

func setupDashboardTest(t *testing.T, broken bool) *db.DB {
	t.Helper()

	database := testutil.NewTestDB(t)
	var q dbgen.Querier = database.Queries
	if broken {
		q = brokenUsers{Querier: database.Queries}
	}
	agg, err := stats.NewAggregator(q, stats.WithClock(stats.FixedClock{At: testNow}), stats.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}

	resetHandlers()
	InitHandlers(agg, database.Queries, time.Second)
	t.Cleanup(resetHandlers)

	return database
}

func resetHandlers() {
	aggregator = nil
	snapshots = nil
	queryTimeout = defaultQueryTimeout
	handlersOnce = sync.Once{}
}

func seedHostel(t *testing.T, database *db.DB) string {
	t.Helper()
	seed := testutil.NewSeeder(t, database)
	hostel := seed.Hostel("Harbour House")
	guest := seed.User("Ada", "GUEST", hostel)
	room := seed.Room(hostel, "101", 1, "OCCUPIED")
	seed.Room(hostel, "102", 1, "AVAILABLE")
	booking := seed.Booking(testutil.BookingSeed{HostelID: hostel, RoomID: room, UserID: guest, Status: "CHECKED_IN", CreatedAt: testNow.AddDate(0, 0, -2)})
	seed.Payment(testutil.PaymentSeed{BookingID: booking, Amount: testutil.Amount(5000), CreatedAt: testNow.AddDate(0, 0, -2)})
	return hostel
}

func TestHandleDashboardStats(t *testing.T) {
	database := setupDashboardTest(t, false)
	hostel := seedHostel(t, database)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats?hostel_id="+hostel, nil)
	rec := httptest.NewRecorder()
	HandleDashboardStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON, got %q", ct)
	}
	if rec.Header().Get(StaleHeader) != "" {
		t.Fatal("fresh response must not be marked stale")
	}

	var body struct {
		Summary struct {
			TotalRooms     int64   `json:"totalRooms"`
			OccupancyRate  int64   `json:"occupancyRate"`
			TotalRevenue   float64 `json:"totalRevenue"`
			ActiveBookings int64   `json:"activeBookings"`
		} `json:"summary"`
		RecentActivities struct {
			Payments []map[string]any `json:"payments"`
		} `json:"recentActivities"`
		Filter struct {
			HostelID string `json:"hostelId"`
		} `json:"filter"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Summary.TotalRooms != 2 || body.Summary.OccupancyRate != 50 || body.Summary.TotalRevenue != 5000 || body.Summary.ActiveBookings != 1 {
		t.Fatalf("unexpected summary: %+v", body.Summary)
	}
	if len(body.RecentActivities.Payments) != 1 {
		t.Fatalf("expected 1 recent payment, got %d", len(body.RecentActivities.Payments))
	}
	if body.Filter.HostelID != hostel {
		t.Fatalf("expected filter echo %q, got %q", hostel, body.Filter.HostelID)
	}
}

func TestHandleDashboardStatsInvalidFilter(t *testing.T) {
	setupDashboardTest(t, false)

	for _, target := range []string{
		"/api/v1/dashboard/stats?start_date=2026-03-10&end_date=2026-03-01",
		"/api/v1/dashboard/stats?start_date=2026-03-10",
		"/api/v1/dashboard/stats?date_range=yesterday-ish",
	} {
		rec := httptest.NewRecorder()
		HandleDashboardStats(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestHandleDashboardStatsFailureWithoutSnapshot(t *testing.T) {
	setupDashboardTest(t, true)

	rec := httptest.NewRecorder()
	HandleDashboardStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Header().Get(StaleHeader) != "" {
		t.Fatal("error response must not be marked stale")
	}
}

func TestHandleDashboardStatsServesStaleSnapshot(t *testing.T) {
	database := setupDashboardTest(t, true)

	takenAt := testNow.Add(-time.Hour)
	stored := &stats.DashboardStats{Summary: stats.Summary{RoomSummary: stats.RoomSummary{TotalRooms: 42}}}
	if _, err := models.SaveReportSnapshot(context.Background(), database.Queries, "", takenAt, stored); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	rec := httptest.NewRecorder()
	HandleDashboardStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from snapshot, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(StaleHeader) != "true" {
		t.Fatal("expected stale header")
	}
	if got := rec.Header().Get(TakenAtHeader); got != takenAt.Format(time.RFC3339) {
		t.Fatalf("expected taken-at %q, got %q", takenAt.Format(time.RFC3339), got)
	}
	var body stats.DashboardStats
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Summary.TotalRooms != 42 {
		t.Fatalf("expected snapshot payload, got %+v", body.Summary)
	}

	ranged := httptest.NewRecorder()
	HandleDashboardStats(ranged, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats?date_range=this_month", nil))
	if ranged.Code != http.StatusInternalServerError {
		t.Fatalf("expected ranged request to skip snapshot fallback, got %d", ranged.Code)
	}
}

func TestHandleDashboardStatsUninitialized(t *testing.T) {
	resetHandlers()
	t.Cleanup(resetHandlers)

	rec := httptest.NewRecorder()
	HandleDashboardStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
