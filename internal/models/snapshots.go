// internal/models/snapshots.go
package models

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
	"github.com/hostelhub/hostelhub/internal/stats"
)

// ErrSnapshotNotFound is returned when no snapshot exists for a scope.
var ErrSnapshotNotFound = errors.New("report snapshot not found")

// ReportSnapshot is a stored dashboard computed by the scheduler. An empty
// HostelID is the global scope.
type ReportSnapshot struct {
	ID       string                `json:"id"`
	HostelID string                `json:"hostelId"`
	TakenAt  time.Time             `json:"takenAt"`
	Stats    *stats.DashboardStats `json:"stats"`
}

type SnapshotQueries interface {
	CreateReportSnapshot(ctx context.Context, arg dbgen.CreateReportSnapshotParams) error
	GetLatestReportSnapshot(ctx context.Context, hostelID string) (dbgen.ReportSnapshot, error)
	DeleteReportSnapshotsBefore(ctx context.Context, takenAt time.Time) (int64, error)
}

func SaveReportSnapshot(ctx context.Context, q SnapshotQueries, hostelID string, takenAt time.Time, dashboard *stats.DashboardStats) (ReportSnapshot, error) {
	if dashboard == nil {
		return ReportSnapshot{}, fmt.Errorf("dashboard stats are required")
	}
	payload, err := json.Marshal(dashboard)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("encode snapshot: %w", err)
	}

	snapshot := ReportSnapshot{
		ID:       uuid.NewString(),
		HostelID: strings.TrimSpace(hostelID),
		TakenAt:  takenAt.UTC(),
		Stats:    dashboard,
	}
	err = q.CreateReportSnapshot(ctx, dbgen.CreateReportSnapshotParams{
		ID:       snapshot.ID,
		HostelID: snapshot.HostelID,
		TakenAt:  snapshot.TakenAt,
		Payload:  string(payload),
	})
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	return snapshot, nil
}

func LatestReportSnapshot(ctx context.Context, q SnapshotQueries, hostelID string) (ReportSnapshot, error) {
	row, err := q.GetLatestReportSnapshot(ctx, strings.TrimSpace(hostelID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReportSnapshot{}, ErrSnapshotNotFound
		}
		return ReportSnapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	var dashboard stats.DashboardStats
	if err := json.Unmarshal([]byte(row.Payload), &dashboard); err != nil {
		return ReportSnapshot{}, fmt.Errorf("decode snapshot %s: %w", row.ID, err)
	}
	return ReportSnapshot{
		ID:       row.ID,
		HostelID: row.HostelID,
		TakenAt:  row.TakenAt,
		Stats:    &dashboard,
	}, nil
}

// PruneReportSnapshots deletes snapshots taken before the cutoff and returns how many went.
func PruneReportSnapshots(ctx context.Context, q SnapshotQueries, before time.Time) (int64, error) {
	deleted, err := q.DeleteReportSnapshotsBefore(ctx, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	return deleted, nil
}
