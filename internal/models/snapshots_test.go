package models

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hostelhub/hostelhub/internal/stats"
	"github.com/hostelhub/hostelhub/internal/testutil"
)

func TestLatestReportSnapshotNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)

	_, err := LatestReportSnapshot(context.Background(), database.Queries, "")
	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestSaveAndLoadLatestSnapshot(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	base := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	older := &stats.DashboardStats{Summary: stats.Summary{RoomSummary: stats.RoomSummary{TotalRooms: 1}}}
	newer := &stats.DashboardStats{Summary: stats.Summary{RoomSummary: stats.RoomSummary{TotalRooms: 2}}}
	other := &stats.DashboardStats{Summary: stats.Summary{RoomSummary: stats.RoomSummary{TotalRooms: 9}}}

	if _, err := SaveReportSnapshot(ctx, database.Queries, "", base, older); err != nil {
		t.Fatalf("save older: %v", err)
	}
	saved, err := SaveReportSnapshot(ctx, database.Queries, "", base.Add(time.Hour), newer)
	if err != nil {
		t.Fatalf("save newer: %v", err)
	}
	if _, err := SaveReportSnapshot(ctx, database.Queries, "hostel-1", base.Add(2*time.Hour), other); err != nil {
		t.Fatalf("save hostel snapshot: %v", err)
	}

	latest, err := LatestReportSnapshot(ctx, database.Queries, "")
	if err != nil {
		t.Fatalf("LatestReportSnapshot: %v", err)
	}
	if latest.ID != saved.ID {
		t.Fatalf("expected snapshot %s, got %s", saved.ID, latest.ID)
	}
	if latest.Stats.Summary.TotalRooms != 2 {
		t.Fatalf("expected decoded total rooms 2, got %d", latest.Stats.Summary.TotalRooms)
	}
	if !latest.TakenAt.Equal(base.Add(time.Hour)) {
		t.Fatalf("expected taken at %v, got %v", base.Add(time.Hour), latest.TakenAt)
	}

	scoped, err := LatestReportSnapshot(ctx, database.Queries, " hostel-1 ")
	if err != nil {
		t.Fatalf("LatestReportSnapshot scoped: %v", err)
	}
	if scoped.HostelID != "hostel-1" || scoped.Stats.Summary.TotalRooms != 9 {
		t.Fatalf("unexpected scoped snapshot: %+v", scoped)
	}
}

func TestSaveReportSnapshotRequiresStats(t *testing.T) {
	database := testutil.NewTestDB(t)
	if _, err := SaveReportSnapshot(context.Background(), database.Queries, "", time.Now(), nil); err == nil {
		t.Fatal("expected error for nil stats")
	}
}

func TestPruneReportSnapshots(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := SaveReportSnapshot(ctx, database.Queries, "", base.AddDate(0, 0, i), &stats.DashboardStats{}); err != nil {
			t.Fatalf("save snapshot %d: %v", i, err)
		}
	}

	deleted, err := PruneReportSnapshots(ctx, database.Queries, base.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("PruneReportSnapshots: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted, got %d", deleted)
	}

	latest, err := LatestReportSnapshot(ctx, database.Queries, "")
	if err != nil {
		t.Fatalf("LatestReportSnapshot: %v", err)
	}
	if !latest.TakenAt.Equal(base.AddDate(0, 0, 2)) {
		t.Fatalf("expected newest snapshot to survive, got %v", latest.TakenAt)
	}
}
