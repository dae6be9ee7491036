package metrics

import (
	"database/sql"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

const (
	metricPrefix = "hostelhub_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	aggregationsTotal  *prometheus.CounterVec
	aggregationLatency *prometheus.HistogramVec

	httpRequestsTotal *prometheus.CounterVec

	snapshotsTotal *prometheus.CounterVec

	rateLimitedTotal *prometheus.CounterVec
)

// Init registers collectors with the default registry. Recorders are no-ops
// until Init has run. db may be nil.
func Init(db *sql.DB) {
	registerOnce.Do(func() {
		aggregationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_aggregations_total",
				Help: "Total report aggregations by report and result",
			},
			[]string{"report", "result"},
		)
		aggregationLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_aggregation_seconds",
				Help:    "Report aggregation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report", "result"},
		)

		httpRequestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by path and status",
			},
			[]string{"path", "status"},
		)

		snapshotsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_snapshots_total",
				Help: "Total scheduled report snapshots by result",
			},
			[]string{"result"},
		)

		rateLimitedTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rate_limited_total",
				Help: "Total requests rejected by the rate limiter",
			},
			[]string{"route"},
		)

		prometheus.MustRegister(
			aggregationsTotal,
			aggregationLatency,
			httpRequestsTotal,
			snapshotsTotal,
			rateLimitedTotal,
		)

		if db != nil {
			registerDBMetrics(db)
		}
	})
}

func registerDBMetrics(db *sql.DB) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "report_snapshots_stored",
			Help: "Report snapshots currently stored",
		},
		func() float64 {
			return queryCount(db, "SELECT COUNT(*) FROM report_snapshots")
		},
	))
}

func queryCount(db *sql.DB, query string) float64 {
	var count int64
	if err := db.QueryRow(query).Scan(&count); err != nil {
		log.Warn().Err(err).Msg("Metrics query failed")
		return 0
	}
	if count < 0 {
		return 0
	}
	return float64(count)
}

// ObserveAggregation records one report build.
func ObserveAggregation(report string, err error, duration time.Duration) {
	if report == "" {
		report = "unknown"
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if aggregationsTotal != nil {
		aggregationsTotal.WithLabelValues(report, result).Inc()
	}
	if aggregationLatency != nil {
		aggregationLatency.WithLabelValues(report, result).Observe(duration.Seconds())
	}
}

// ObserveHTTPRequest counts a served request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func ObserveHTTPRequest(path string, status int) {
	if httpRequestsTotal != nil {
		httpRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	}
}

// IncSnapshot counts one scheduled snapshot attempt.
func IncSnapshot(err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if snapshotsTotal != nil {
		snapshotsTotal.WithLabelValues(result).Inc()
	}
}

// IncRateLimited counts a rejected request.
func IncRateLimited(route string) {
	if route == "" {
		route = "unknown"
	}
	if rateLimitedTotal != nil {
		rateLimitedTotal.WithLabelValues(route).Inc()
	}
}
