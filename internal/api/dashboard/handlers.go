// internal/api/dashboard/handlers.go
package dashboard

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hostelhub/hostelhub/internal/api/apiutil"
	"github.com/hostelhub/hostelhub/internal/models"
	"github.com/hostelhub/hostelhub/internal/request"
	"github.com/hostelhub/hostelhub/internal/stats"
)

const (
	defaultQueryTimeout = 5 * time.Second

	// StaleHeader marks a response served from a stored snapshot after a live
	// aggregation failed.
	StaleHeader   = "X-Report-Stale"
	TakenAtHeader = "X-Report-Taken-At"
)

var (
	aggregator   *stats.Aggregator
	snapshots    models.SnapshotQueries
	queryTimeout = defaultQueryTimeout
	handlersOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
// snapshotQueries may be nil, which disables the stale-snapshot fallback.
func InitHandlers(agg *stats.Aggregator, snapshotQueries models.SnapshotQueries, timeout time.Duration) {
	if agg == nil {
		log.Warn().Msg("InitHandlers called with nil aggregator; dashboard handlers will be unavailable")
		return
	}
	handlersOnce.Do(func() {
		aggregator = agg
		snapshots = snapshotQueries
		if timeout > 0 {
			queryTimeout = timeout
		}
	})
}

// HandleDashboardStats returns the dashboard statistics for GET /api/v1/dashboard/stats.
func HandleDashboardStats(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	agg := aggregator
	if agg == nil {
		logger.Error().Msg("Dashboard aggregator not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	filter, err := request.ReportFilter(r, agg.Now(), agg.Location())
	if err != nil {
		apiutil.RespondError(w, r, apiutil.HandlerError{Status: http.StatusBadRequest, Message: err.Error(), Err: err})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	dashboard, err := agg.DashboardStats(ctx, filter)
	if err != nil {
		if r.Context().Err() != nil {
			logger.Debug().Err(err).Msg("Dashboard request cancelled by client")
			return
		}
		if serveStaleSnapshot(w, r, filter, err) {
			return
		}
		logger.Error().
			Err(err).
			Str("hostel_id", filter.HostelID()).
			Str("report", "dashboard").
			Msg("Failed to build dashboard stats")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load dashboard stats")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, dashboard); err != nil {
		logger.Error().Err(err).Msg("Failed to write dashboard stats")
	}
}

// serveStaleSnapshot answers with the newest stored snapshot for the same
// hostel scope. Snapshots are all-time, so ranged requests never fall back.
func serveStaleSnapshot(w http.ResponseWriter, r *http.Request, filter stats.ReportFilter, cause error) bool {
	if snapshots == nil {
		return false
	}
	if _, ranged := filter.DateRange(); ranged {
		return false
	}

	logger := log.Ctx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	snapshot, err := models.LatestReportSnapshot(ctx, snapshots, filter.HostelID())
	if err != nil {
		if !errors.Is(err, models.ErrSnapshotNotFound) {
			logger.Error().Err(err).Str("hostel_id", filter.HostelID()).Msg("Failed to load fallback snapshot")
		}
		return false
	}

	logger.Warn().
		Err(cause).
		Str("hostel_id", filter.HostelID()).
		Str("snapshot_id", snapshot.ID).
		Time("taken_at", snapshot.TakenAt).
		Msg("Serving stale dashboard snapshot")

	w.Header().Set(StaleHeader, "true")
	w.Header().Set(TakenAtHeader, snapshot.TakenAt.UTC().Format(time.RFC3339))
	if err := apiutil.WriteJSON(w, http.StatusOK, snapshot.Stats); err != nil {
		logger.Error().Err(err).Msg("Failed to write stale dashboard snapshot")
	}
	return true
}
