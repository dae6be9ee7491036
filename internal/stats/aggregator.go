package stats

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
	"github.com/hostelhub/hostelhub/internal/metrics"
)

const (
	defaultRecentLimit   = 10
	defaultTopRoomsLimit = 10
	defaultTrendMonths   = 6

	reportDashboard     = "dashboard"
	reportComprehensive = "comprehensive"
)

// Aggregator computes read-only statistics reports. It holds no mutable state
// and is safe for concurrent use.
type Aggregator struct {
	queries       dbgen.Querier
	clock         Clock
	loc           *time.Location
	recentLimit   int64
	topRoomsLimit int64
	trendMonths   int
}

type Option func(*Aggregator)

func WithClock(clock Clock) Option {
	return func(a *Aggregator) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithLocation sets the calendar zone used for "today" and "this month".
func WithLocation(loc *time.Location) Option {
	return func(a *Aggregator) {
		if loc != nil {
			a.loc = loc
		}
	}
}

func WithRecentLimit(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.recentLimit = int64(n)
		}
	}
}

func WithTopRoomsLimit(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.topRoomsLimit = int64(n)
		}
	}
}

func WithTrendMonths(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.trendMonths = n
		}
	}
}

func NewAggregator(queries dbgen.Querier, opts ...Option) (*Aggregator, error) {
	if queries == nil {
		return nil, errors.New("stats: queries is required")
	}
	a := &Aggregator{
		queries:       queries,
		clock:         SystemClock{},
		loc:           time.Local,
		recentLimit:   defaultRecentLimit,
		topRoomsLimit: defaultTopRoomsLimit,
		trendMonths:   defaultTrendMonths,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Location returns the calendar zone the aggregator reports in.
func (a *Aggregator) Location() *time.Location {
	return a.loc
}

// Now is the aggregator's clock reading in its calendar zone.
func (a *Aggregator) Now() time.Time {
	return a.clock.Now().In(a.loc)
}

// DashboardStats is the full dashboard snapshot for one filter.
type DashboardStats struct {
	Summary Summary `json:"summary"`
	// Bookings created in the date range, by status. Sums to Summary.TotalBookings.
	BookingStatusDistribution []StatusCount     `json:"bookingStatusDistribution"`
	PaymentMethodDistribution []MethodTotal     `json:"paymentMethodDistribution"`
	RecentActivities          RecentActivities  `json:"recentActivities"`
	MonthlyRevenueData        []RevenuePoint    `json:"monthlyRevenueData"`
	TopPerformingRooms        []RoomPerformance `json:"topPerformingRooms"`
	Filter                    FilterEcho        `json:"filter"`
	GeneratedAt               time.Time         `json:"generatedAt"`
}

// collect runs fetch on the group and stores its result in dst. A failure is
// tagged with op so the caller can tell which read broke.
func collect[T any](g *errgroup.Group, ctx context.Context, op string, dst *T, fetch func(context.Context) (T, error)) {
	g.Go(func() error {
		v, err := fetch(ctx)
		if err != nil {
			return &DataStoreError{Op: op, Err: err}
		}
		*dst = v
		return nil
	})
}

// DashboardStats runs every independent read concurrently and assembles the
// snapshot. The first failing read cancels the rest; nothing partial is returned.
func (a *Aggregator) DashboardStats(ctx context.Context, filter ReportFilter) (stats *DashboardStats, err error) {
	started := time.Now()
	defer func() {
		metrics.ObserveAggregation(reportDashboard, err, time.Since(started))
	}()

	now := a.Now()
	hostelID := filter.HostelID()
	start, end := filter.storeRange()
	dayStart, dayEnd := dayWindow(now)
	monthStart, monthEnd := monthWindow(now)
	trendStart := trendWindowStart(now, a.trendMonths)

	var (
		roomRows        []dbgen.CountRoomsByStatusRow
		userRows        []dbgen.CountUsersByRoleRow
		bookingRows     []dbgen.CountBookingsByStatusRow
		checkIns        int64
		checkOuts       int64
		paymentTotals   dbgen.GetPaymentTotalsRow
		monthlyRevenue  float64
		methodRows      []dbgen.CountPaymentsByMethodRow
		maintenanceRows []dbgen.CountMaintenanceByStatusRow
		completedMaint  int64
		expenseTotals   dbgen.GetExpenseTotalsRow
		recentBookings  []dbgen.ListRecentBookingsRow
		recentPayments  []dbgen.ListRecentPaymentsRow
		recentMaint     []dbgen.ListRecentMaintenanceRow
		trendRows       []dbgen.ListCompletedPaymentsSinceRow
		roomRevenue     []dbgen.ListRoomRevenueRow
	)

	g, gctx := errgroup.WithContext(ctx)

	collect(g, gctx, "count rooms by status", &roomRows, func(ctx context.Context) ([]dbgen.CountRoomsByStatusRow, error) {
		return a.queries.CountRoomsByStatus(ctx, hostelID)
	})
	collect(g, gctx, "count users by role", &userRows, func(ctx context.Context) ([]dbgen.CountUsersByRoleRow, error) {
		return a.queries.CountUsersByRole(ctx)
	})
	collect(g, gctx, "count bookings by status", &bookingRows, func(ctx context.Context) ([]dbgen.CountBookingsByStatusRow, error) {
		return a.queries.CountBookingsByStatus(ctx, dbgen.CountBookingsByStatusParams{
			HostelID:  hostelID,
			StartTime: start,
			EndTime:   end,
		})
	})
	collect(g, gctx, "count today's check-ins", &checkIns, func(ctx context.Context) (int64, error) {
		return a.queries.CountCheckinsBetween(ctx, dbgen.CountCheckinsBetweenParams{
			HostelID:  hostelID,
			StartTime: dayStart.UTC(),
			EndTime:   dayEnd.UTC(),
		})
	})
	collect(g, gctx, "count today's check-outs", &checkOuts, func(ctx context.Context) (int64, error) {
		return a.queries.CountCheckoutsBetween(ctx, dbgen.CountCheckoutsBetweenParams{
			HostelID:  hostelID,
			StartTime: dayStart.UTC(),
			EndTime:   dayEnd.UTC(),
		})
	})
	collect(g, gctx, "payment totals", &paymentTotals, func(ctx context.Context) (dbgen.GetPaymentTotalsRow, error) {
		return a.queries.GetPaymentTotals(ctx, dbgen.GetPaymentTotalsParams{
			HostelID:  hostelID,
			StartTime: start,
			EndTime:   end,
		})
	})
	collect(g, gctx, "sum monthly revenue", &monthlyRevenue, func(ctx context.Context) (float64, error) {
		return a.queries.SumCompletedPaymentsBetween(ctx, dbgen.SumCompletedPaymentsBetweenParams{
			HostelID:  hostelID,
			StartTime: monthStart.UTC(),
			EndTime:   monthEnd.UTC(),
		})
	})
	collect(g, gctx, "count payments by method", &methodRows, func(ctx context.Context) ([]dbgen.CountPaymentsByMethodRow, error) {
		return a.queries.CountPaymentsByMethod(ctx, dbgen.CountPaymentsByMethodParams{
			HostelID:  hostelID,
			StartTime: start,
			EndTime:   end,
		})
	})
	collect(g, gctx, "count maintenance by status", &maintenanceRows, func(ctx context.Context) ([]dbgen.CountMaintenanceByStatusRow, error) {
		return a.queries.CountMaintenanceByStatus(ctx, hostelID)
	})
	collect(g, gctx, "count completed maintenance", &completedMaint, func(ctx context.Context) (int64, error) {
		return a.queries.CountCompletedMaintenance(ctx, dbgen.CountCompletedMaintenanceParams{
			HostelID:  hostelID,
			StartTime: start,
			EndTime:   end,
		})
	})
	collect(g, gctx, "expense totals", &expenseTotals, func(ctx context.Context) (dbgen.GetExpenseTotalsRow, error) {
		return a.queries.GetExpenseTotals(ctx, dbgen.GetExpenseTotalsParams{
			HostelID:  hostelID,
			StartTime: start,
			EndTime:   end,
		})
	})
	collect(g, gctx, "recent bookings", &recentBookings, func(ctx context.Context) ([]dbgen.ListRecentBookingsRow, error) {
		return a.queries.ListRecentBookings(ctx, dbgen.ListRecentBookingsParams{
			HostelID: hostelID,
			RowLimit: a.recentLimit,
		})
	})
	collect(g, gctx, "recent payments", &recentPayments, func(ctx context.Context) ([]dbgen.ListRecentPaymentsRow, error) {
		return a.queries.ListRecentPayments(ctx, dbgen.ListRecentPaymentsParams{
			HostelID: hostelID,
			RowLimit: a.recentLimit,
		})
	})
	collect(g, gctx, "recent maintenance", &recentMaint, func(ctx context.Context) ([]dbgen.ListRecentMaintenanceRow, error) {
		return a.queries.ListRecentMaintenance(ctx, dbgen.ListRecentMaintenanceParams{
			HostelID: hostelID,
			RowLimit: a.recentLimit,
		})
	})
	collect(g, gctx, "revenue trend", &trendRows, func(ctx context.Context) ([]dbgen.ListCompletedPaymentsSinceRow, error) {
		return a.queries.ListCompletedPaymentsSince(ctx, dbgen.ListCompletedPaymentsSinceParams{
			HostelID: hostelID,
			Since:    trendStart.UTC(),
		})
	})
	collect(g, gctx, "room revenue", &roomRevenue, func(ctx context.Context) ([]dbgen.ListRoomRevenueRow, error) {
		return a.queries.ListRoomRevenue(ctx, dbgen.ListRoomRevenueParams{
			HostelID:  hostelID,
			RoomLimit: a.topRoomsLimit,
			StartTime: start,
			EndTime:   end,
		})
	})

	if err := g.Wait(); err != nil {
		return nil, &AggregationError{Report: reportDashboard, Err: err}
	}

	bookings, statusDistribution := bookingSummary(bookingRows, checkIns, checkOuts)

	return &DashboardStats{
		Summary: Summary{
			RoomSummary:        roomSummary(roomRows),
			UserSummary:        userSummary(userRows),
			BookingSummary:     bookings,
			PaymentSummary:     paymentSummary(paymentTotals, monthlyRevenue),
			MaintenanceSummary: maintenanceSummary(maintenanceRows, completedMaint),
			ExpenseSummary:     expenseSummary(expenseTotals),
		},
		BookingStatusDistribution: statusDistribution,
		PaymentMethodDistribution: paymentMethods(methodRows),
		RecentActivities: RecentActivities{
			Bookings:    bookingActivities(recentBookings),
			Payments:    paymentActivities(recentPayments),
			Maintenance: maintenanceActivities(recentMaint),
		},
		MonthlyRevenueData: revenueTrend(trendRows, trendStart, a.trendMonths, a.loc),
		TopPerformingRooms: rankRooms(roomRevenue),
		Filter:             filter.echo(),
		GeneratedAt:        now,
	}, nil
}
