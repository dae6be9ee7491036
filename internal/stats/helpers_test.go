package stats

import (
	"database/sql"
	"math"
	"testing"
	"time"

	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		part, whole, want int64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{3, 3, 100},
	}
	for _, tt := range tests {
		if got := percentOf(tt.part, tt.whole); got != tt.want {
			t.Errorf("percentOf(%d, %d) = %d, want %d", tt.part, tt.whole, got, tt.want)
		}
	}
}

func TestFiniteAndRound2(t *testing.T) {
	if finite(math.NaN()) != 0 || finite(math.Inf(1)) != 0 || finite(math.Inf(-1)) != 0 {
		t.Fatal("expected non-finite values to become 0")
	}
	if got := round2(33.3333); got != 33.33 {
		t.Fatalf("round2(33.3333) = %v", got)
	}
	if got := round2(math.NaN()); got != 0 {
		t.Fatalf("round2(NaN) = %v", got)
	}
}

func TestRoomSummaryZeroRooms(t *testing.T) {
	if got := roomSummary(nil); got != (RoomSummary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestRoomSummaryCountsByStatus(t *testing.T) {
	got := roomSummary([]dbgen.CountRoomsByStatusRow{
		{Status: "AVAILABLE", RoomCount: 4},
		{Status: "MAINTENANCE", RoomCount: 1},
		{Status: "OCCUPIED", RoomCount: 2},
		{Status: "OUT_OF_ORDER", RoomCount: 1},
	})
	want := RoomSummary{TotalRooms: 8, OccupiedRooms: 2, AvailableRooms: 4, MaintenanceRooms: 1, OutOfOrderRooms: 1, OccupancyRate: 25}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDayAndMonthWindows(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, time.December, 31, 23, 30, 0, 0, loc)

	start, end := dayWindow(now)
	if !start.Equal(time.Date(2026, time.December, 31, 0, 0, 0, 0, loc)) || !end.Equal(time.Date(2027, time.January, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected day window [%v, %v)", start, end)
	}

	start, end = monthWindow(now)
	if !start.Equal(time.Date(2026, time.December, 1, 0, 0, 0, 0, loc)) || !end.Equal(time.Date(2027, time.January, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected month window [%v, %v)", start, end)
	}
}

func TestTrendWindowStartCrossesYear(t *testing.T) {
	now := time.Date(2026, time.March, 31, 18, 0, 0, 0, time.UTC)
	if got := trendWindowStart(now, 6); !got.Equal(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected window start %v", got)
	}
	if got := trendWindowStart(now, 0); !got.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected current month for non-positive months, got %v", got)
	}
}

func TestRevenueTrendBuckets(t *testing.T) {
	windowStart := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	paid := func(amount float64, ts time.Time) dbgen.ListCompletedPaymentsSinceRow {
		return dbgen.ListCompletedPaymentsSinceRow{Amount: sql.NullFloat64{Float64: amount, Valid: true}, CreatedAt: ts}
	}
	rows := []dbgen.ListCompletedPaymentsSinceRow{
		paid(40, time.Date(2025, time.September, 30, 23, 0, 0, 0, time.UTC)),
		paid(100, time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)),
		paid(25, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)),
		{CreatedAt: time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)},
	}

	points := revenueTrend(rows, windowStart, 6, time.UTC)
	wantPeriods := []string{"2025-10", "2025-11", "2025-12", "2026-01", "2026-02", "2026-03"}
	if len(points) != len(wantPeriods) {
		t.Fatalf("expected %d points, got %d", len(wantPeriods), len(points))
	}
	for i, period := range wantPeriods {
		if points[i].Period != period {
			t.Fatalf("point %d: expected period %s, got %s", i, period, points[i].Period)
		}
	}
	if points[0].Revenue != 100 || points[0].Transactions != 1 {
		t.Fatalf("unexpected October bucket: %+v", points[0])
	}
	if points[2].Revenue != 0 || points[2].Transactions != 0 {
		t.Fatalf("expected empty December bucket, got %+v", points[2])
	}
	if points[5].Revenue != 25 || points[5].Transactions != 2 {
		t.Fatalf("unexpected March bucket: %+v", points[5])
	}
}

func TestRevenueTrendUsesLocationForBuckets(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	windowStart := time.Date(2026, time.February, 1, 0, 0, 0, 0, loc)
	rows := []dbgen.ListCompletedPaymentsSinceRow{{
		Amount:    sql.NullFloat64{Float64: 10, Valid: true},
		CreatedAt: time.Date(2026, time.February, 28, 23, 0, 0, 0, time.UTC),
	}}

	points := revenueTrend(rows, windowStart, 2, loc)
	if points[0].Transactions != 0 || points[1].Transactions != 1 {
		t.Fatalf("expected payment bucketed in March local time, got %+v", points)
	}
}

func TestRankRoomsStableOnTies(t *testing.T) {
	rows := []dbgen.ListRoomRevenueRow{
		{RoomID: "a", RoomNumber: "101", TotalRevenue: 50},
		{RoomID: "b", RoomNumber: "102", TotalRevenue: 200},
		{RoomID: "c", RoomNumber: "103", TotalRevenue: 50},
		{RoomID: "d", RoomNumber: "104", TotalRevenue: math.NaN()},
	}

	ranked := rankRooms(rows)
	want := []string{"b", "a", "c", "d"}
	for i, id := range want {
		if ranked[i].RoomID != id {
			t.Fatalf("position %d: expected %s, got %s (%+v)", i, id, ranked[i].RoomID, ranked)
		}
	}
	if ranked[3].TotalRevenue != 0 {
		t.Fatalf("expected NaN revenue to become 0, got %v", ranked[3].TotalRevenue)
	}
}

func TestRankRoomsTiesByFloorThenNumericRoom(t *testing.T) {
	rows := []dbgen.ListRoomRevenueRow{
		{RoomID: "a", RoomNumber: "10", Floor: 1},
		{RoomID: "b", RoomNumber: "9", Floor: 1},
		{RoomID: "c", RoomNumber: "1", Floor: 2},
		{RoomID: "d", RoomNumber: "12B", Floor: 1},
		{RoomID: "e", RoomNumber: "12A", Floor: 1},
	}

	ranked := rankRooms(rows)
	want := []string{"b", "a", "e", "d", "c"}
	for i, id := range want {
		if ranked[i].RoomID != id {
			t.Fatalf("position %d: expected %s, got %s (%+v)", i, id, ranked[i].RoomID, ranked)
		}
	}
}

func TestActivityMappers(t *testing.T) {
	ts := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	payments := paymentActivities([]dbgen.ListRecentPaymentsRow{{
		ID: "p1", Amount: sql.NullFloat64{Float64: 1234.5, Valid: true}, Status: "COMPLETED", CreatedAt: ts, RoomNumber: "12", UserName: "Ada",
	}})
	if payments[0].Message != "Payment of 1234.50 received for Room 12" || payments[0].Type != "payment" {
		t.Fatalf("unexpected payment activity: %+v", payments[0])
	}

	bookings := bookingActivities([]dbgen.ListRecentBookingsRow{{ID: "b1", Status: "PENDING", CreatedAt: ts, RoomNumber: "7"}})
	if bookings[0].User != "Unknown" || bookings[0].Message != "New booking for Room 7" {
		t.Fatalf("unexpected booking activity: %+v", bookings[0])
	}

	if got := maintenanceActivities(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
