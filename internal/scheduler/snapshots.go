package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
	"github.com/hostelhub/hostelhub/internal/metrics"
	"github.com/hostelhub/hostelhub/internal/models"
	"github.com/hostelhub/hostelhub/internal/stats"
)

const (
	SnapshotJobName     = "report_snapshots"
	DefaultSnapshotCron = "0 * * * *"
	snapshotJobTimeout  = 5 * time.Minute
)

// DashboardSource computes dashboards for the snapshot job.
type DashboardSource interface {
	DashboardStats(ctx context.Context, filter stats.ReportFilter) (*stats.DashboardStats, error)
	Now() time.Time
}

// SnapshotStore is the query surface the snapshot job needs.
type SnapshotStore interface {
	models.SnapshotQueries
	ListHostels(ctx context.Context) ([]dbgen.Hostel, error)
}

// SnapshotRun summarizes one pass of the snapshot job.
type SnapshotRun struct {
	Saved  int
	Failed int
	Pruned int64
}

// RegisterSnapshotJob schedules RunReportSnapshots on the singleton scheduler.
// An empty cronExpr uses DefaultSnapshotCron.
func RegisterSnapshotJob(source DashboardSource, store SnapshotStore, cronExpr string, retention time.Duration) error {
	if source == nil || store == nil {
		return fmt.Errorf("snapshot job requires a dashboard source and a store")
	}
	if cronExpr == "" {
		cronExpr = DefaultSnapshotCron
	}

	jobLogger := log.With().
		Str("component", "report_snapshots_job").
		Str("job_name", SnapshotJobName).
		Str("cron", cronExpr).
		Logger()

	_, err := AddJob(SnapshotJobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotJobTimeout)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		run, err := RunReportSnapshots(ctx, source, store, retention)
		if err != nil {
			jobLogger.Error().Err(err).Msg("Report snapshot run failed")
			return
		}
		jobLogger.Info().
			Int("saved", run.Saved).
			Int("failed", run.Failed).
			Int64("pruned", run.Pruned).
			Msg("Report snapshot run finished")
	}, gocron.WithSingletonMode(gocron.LimitModeReschedule))
	if err != nil {
		return fmt.Errorf("add report snapshot job: %w", err)
	}
	return nil
}

// RunReportSnapshots stores an all-time dashboard for the global scope and
// for each hostel, then prunes snapshots older than retention. A failing
// hostel is logged and skipped. The returned error is only set when the
// hostel list itself cannot be loaded.
func RunReportSnapshots(ctx context.Context, source DashboardSource, store SnapshotStore, retention time.Duration) (SnapshotRun, error) {
	logger := log.Ctx(ctx)
	var run SnapshotRun

	hostels, err := store.ListHostels(ctx)
	if err != nil {
		metrics.IncSnapshot(err)
		return run, fmt.Errorf("list hostels: %w", err)
	}

	scopes := make([]string, 0, len(hostels)+1)
	scopes = append(scopes, "")
	for _, hostel := range hostels {
		scopes = append(scopes, hostel.ID)
	}

	for _, hostelID := range scopes {
		if ctx.Err() != nil {
			return run, ctx.Err()
		}
		scopeLogger := logger.With().Str("hostel_id", hostelID).Logger()
		err := snapshotScope(ctx, source, store, hostelID)
		metrics.IncSnapshot(err)
		if err != nil {
			run.Failed++
			scopeLogger.Error().Err(err).Msg("Failed to store report snapshot")
			continue
		}
		run.Saved++
	}

	if retention > 0 {
		pruned, err := models.PruneReportSnapshots(ctx, store, source.Now().Add(-retention))
		if err != nil {
			logger.Error().Err(err).Msg("Failed to prune report snapshots")
		} else {
			run.Pruned = pruned
		}
	}

	return run, nil
}

func snapshotScope(ctx context.Context, source DashboardSource, store SnapshotStore, hostelID string) error {
	filter, err := stats.NewReportFilter(hostelID, nil)
	if err != nil {
		return err
	}
	dashboard, err := source.DashboardStats(ctx, filter)
	if err != nil {
		return err
	}
	if _, err := models.SaveReportSnapshot(ctx, store, hostelID, source.Now(), dashboard); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Str("hostel_id", hostelID).Msg("Report snapshot stored")
	return nil
}
