// internal/api/reports/handlers.go
package reports

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

const defaultQueryTimeout = 5 * time.Second

var (
	aggregator   *stats.Aggregator
	snapshots    models.SnapshotQueries
	queryTimeout = defaultQueryTimeout
	handlersOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(agg *stats.Aggregator, snapshotQueries models.SnapshotQueries, timeout time.Duration) {
	if agg == nil || snapshotQueries == nil {
		log.Warn().Msg("InitHandlers called with nil dependencies; report handlers will be unavailable")
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

// HandleComprehensiveReport returns the management report for GET /api/v1/reports/comprehensive.
func HandleComprehensiveReport(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	agg := aggregator
	if agg == nil {
		logger.Error().Msg("Report aggregator not initialized")
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

	report, err := agg.ComprehensiveReport(ctx, filter)
	if err != nil {
		if r.Context().Err() != nil {
			logger.Debug().Err(err).Msg("Report request cancelled by client")
			return
		}
		logger.Error().
			Err(err).
			Str("hostel_id", filter.HostelID()).
			Str("report", "comprehensive").
			Msg("Failed to build comprehensive report")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load report")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, report); err != nil {
		logger.Error().Err(err).Msg("Failed to write comprehensive report")
	}
}

// HandleLatestSnapshot returns the newest stored dashboard snapshot for
// GET /api/v1/reports/snapshots/latest.
func HandleLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := snapshots
	if q == nil {
		logger.Error().Msg("Snapshot queries not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	hostelID, ok := request.ParseHostelID(r.URL.Query().Get("hostel_id"))
	if !ok {
		apiutil.WriteError(w, http.StatusBadRequest, "hostel_id must be alphanumeric")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	snapshot, err := models.LatestReportSnapshot(ctx, q, hostelID)
	if err != nil {
		if errors.Is(err, models.ErrSnapshotNotFound) {
			apiutil.WriteError(w, http.StatusNotFound, "No snapshot available")
			return
		}
		logger.Error().Err(err).Str("hostel_id", hostelID).Msg("Failed to load report snapshot")
		apiutil.WriteError(w, http.StatusInternalServerError, "Failed to load snapshot")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, snapshot); err != nil {
		logger.Error().Err(err).Msg("Failed to write report snapshot")
	}
}
