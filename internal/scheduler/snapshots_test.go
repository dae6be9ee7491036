package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hostelhub/hostelhub/internal/models"
	"github.com/hostelhub/hostelhub/internal/stats"
	"github.com/hostelhub/hostelhub/internal/testutil"
)

var snapshotNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

// flakySource fails for one hostel and delegates the rest.
type flakySource struct {
	*stats.Aggregator
	failHostel string
}

func (s flakySource) DashboardStats(ctx context.Context, filter stats.ReportFilter) (*stats.DashboardStats, error) {
	if filter.HostelID() == s.failHostel {
		return nil, errors.New("boom")
	}
	return s.Aggregator.DashboardStats(ctx, filter)
}

func TestRunReportSnapshots(t *testing.T) {
	database := testutil.NewTestDB(t)
	seed := testutil.NewSeeder(t, database)
	hostelA := seed.Hostel("Harbour House")
	hostelB := seed.Hostel("Old Town Lodge")
	seed.Room(hostelA, "101", 1, "")
	seed.Room(hostelA, "102", 1, "")
	seed.Room(hostelB, "201", 2, "")

	agg, err := stats.NewAggregator(database.Queries, stats.WithClock(stats.FixedClock{At: snapshotNow}), stats.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}

	ctx := context.Background()
	stale := &stats.DashboardStats{}
	if _, err := models.SaveReportSnapshot(ctx, database.Queries, hostelA, snapshotNow.Add(-40*24*time.Hour), stale); err != nil {
		t.Fatalf("seed stale snapshot: %v", err)
	}

	run, err := RunReportSnapshots(ctx, agg, database.Queries, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("RunReportSnapshots: %v", err)
	}
	if run.Saved != 3 || run.Failed != 0 {
		t.Fatalf("expected 3 saved and 0 failed, got %+v", run)
	}
	if run.Pruned != 1 {
		t.Fatalf("expected 1 pruned snapshot, got %d", run.Pruned)
	}

	global, err := models.LatestReportSnapshot(ctx, database.Queries, "")
	if err != nil {
		t.Fatalf("LatestReportSnapshot global: %v", err)
	}
	if global.Stats.Summary.TotalRooms != 3 {
		t.Fatalf("expected global snapshot with 3 rooms, got %d", global.Stats.Summary.TotalRooms)
	}
	if !global.TakenAt.Equal(snapshotNow) {
		t.Fatalf("expected snapshot taken at %v, got %v", snapshotNow, global.TakenAt)
	}

	scoped, err := models.LatestReportSnapshot(ctx, database.Queries, hostelA)
	if err != nil {
		t.Fatalf("LatestReportSnapshot hostel: %v", err)
	}
	if scoped.Stats.Summary.TotalRooms != 2 {
		t.Fatalf("expected hostel snapshot with 2 rooms, got %d", scoped.Stats.Summary.TotalRooms)
	}
}

func TestRunReportSnapshotsContinuesPastFailures(t *testing.T) {
	database := testutil.NewTestDB(t)
	seed := testutil.NewSeeder(t, database)
	hostelA := seed.Hostel("Harbour House")
	hostelB := seed.Hostel("Old Town Lodge")

	agg, err := stats.NewAggregator(database.Queries, stats.WithClock(stats.FixedClock{At: snapshotNow}), stats.WithLocation(time.UTC))
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}
	source := flakySource{Aggregator: agg, failHostel: hostelA}

	ctx := context.Background()
	run, err := RunReportSnapshots(ctx, source, database.Queries, 0)
	if err != nil {
		t.Fatalf("RunReportSnapshots: %v", err)
	}
	if run.Saved != 2 || run.Failed != 1 {
		t.Fatalf("expected 2 saved and 1 failed, got %+v", run)
	}
	if run.Pruned != 0 {
		t.Fatalf("expected no pruning with zero retention, got %d", run.Pruned)
	}

	if _, err := models.LatestReportSnapshot(ctx, database.Queries, hostelA); !errors.Is(err, models.ErrSnapshotNotFound) {
		t.Fatalf("expected no snapshot for failing hostel, got %v", err)
	}
	if _, err := models.LatestReportSnapshot(ctx, database.Queries, hostelB); err != nil {
		t.Fatalf("expected snapshot for healthy hostel, got %v", err)
	}
}

func TestServiceAddJobValidation(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	defer svc.Stop()

	if _, err := svc.AddJob("", "* * * * *", func() {}); !errors.Is(err, ErrEmptyJobName) {
		t.Fatalf("expected ErrEmptyJobName, got %v", err)
	}
	if _, err := svc.AddJob("noop", " ", func() {}); !errors.Is(err, ErrEmptyCronExpr) {
		t.Fatalf("expected ErrEmptyCronExpr, got %v", err)
	}
	if _, err := svc.AddJob("noop", "not a cron", func() {}); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
	if _, err := svc.AddJob(SnapshotJobName, DefaultSnapshotCron, func() {}); err != nil {
		t.Fatalf("AddJob: %v", err)
	}
}

func TestNilServiceIsNotInitialized(t *testing.T) {
	var svc *Service
	if err := svc.Stop(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if _, err := svc.AddJob("noop", "* * * * *", func() {}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}
