package stats

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
	"github.com/hostelhub/hostelhub/internal/metrics"
)

type FinancialSummary struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalExpenses   float64 `json:"totalExpenses"`
	TotalPayroll    float64 `json:"totalPayroll"`
	NetIncome       float64 `json:"netIncome"`
	ProfitMargin    float64 `json:"profitMargin"`
	PaidSalaries    int64   `json:"paidSalaries"`
	PendingSalaries int64   `json:"pendingSalaries"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Amount   float64 `json:"amount"`
}

type PriorityBreakdown struct {
	Priority   string `json:"priority"`
	Total      int64  `json:"total"`
	Pending    int64  `json:"pending"`
	InProgress int64  `json:"inProgress"`
	Completed  int64  `json:"completed"`
}

type FloorOccupancy struct {
	Floor         int64 `json:"floor"`
	TotalRooms    int64 `json:"totalRooms"`
	OccupiedRooms int64 `json:"occupiedRooms"`
	OccupancyRate int64 `json:"occupancyRate"`
}

type BookingMetrics struct {
	TotalBookings     int64   `json:"totalBookings"`
	AverageStayNights float64 `json:"averageStayNights"`
	CancelledBookings int64   `json:"cancelledBookings"`
	CancellationRate  float64 `json:"cancellationRate"`
}

// ComprehensiveReport is the management report: money in and out, upkeep,
// occupancy per floor and booking behaviour.
type ComprehensiveReport struct {
	Financial             FinancialSummary    `json:"financial"`
	ExpensesByCategory    []CategoryTotal     `json:"expensesByCategory"`
	MaintenanceByPriority []PriorityBreakdown `json:"maintenanceByPriority"`
	OccupancyByFloor      []FloorOccupancy    `json:"occupancyByFloor"`
	Bookings              BookingMetrics      `json:"bookings"`
	Filter                FilterEcho          `json:"filter"`
	GeneratedAt           time.Time           `json:"generatedAt"`
}

// ComprehensiveReport has the same filter and failure semantics as DashboardStats.
func (a *Aggregator) ComprehensiveReport(ctx context.Context, filter ReportFilter) (report *ComprehensiveReport, err error) {
	started := time.Now()
	defer func() {
		metrics.ObserveAggregation(reportComprehensive, err, time.Since(started))
	}()

	now := a.Now()
	hostelID := filter.HostelID()
	start, end := filter.storeRange()

	var (
		paymentTotals dbgen.GetPaymentTotalsRow
		expenseTotals dbgen.GetExpenseTotalsRow
		payroll       dbgen.GetPayrollTotalsRow
		categoryRows  []dbgen.ListExpensesByCategoryRow
		priorityRows  []dbgen.CountMaintenanceByPriorityRow
		floorRows     []dbgen.CountRoomsByFloorRow
		stay          dbgen.GetBookingStayMetricsRow
	)

	g, gctx := errgroup.WithContext(ctx)

	collect(g, gctx, "payment totals", &paymentTotals, func(ctx context.Context) (dbgen.GetPaymentTotalsRow, error) {
		return a.queries.GetPaymentTotals(ctx, dbgen.GetPaymentTotalsParams{HostelID: hostelID, StartTime: start, EndTime: end})
	})
	collect(g, gctx, "expense totals", &expenseTotals, func(ctx context.Context) (dbgen.GetExpenseTotalsRow, error) {
		return a.queries.GetExpenseTotals(ctx, dbgen.GetExpenseTotalsParams{HostelID: hostelID, StartTime: start, EndTime: end})
	})
	collect(g, gctx, "payroll totals", &payroll, func(ctx context.Context) (dbgen.GetPayrollTotalsRow, error) {
		return a.queries.GetPayrollTotals(ctx, dbgen.GetPayrollTotalsParams{HostelID: hostelID, StartTime: start, EndTime: end})
	})
	collect(g, gctx, "expenses by category", &categoryRows, func(ctx context.Context) ([]dbgen.ListExpensesByCategoryRow, error) {
		return a.queries.ListExpensesByCategory(ctx, dbgen.ListExpensesByCategoryParams{HostelID: hostelID, StartTime: start, EndTime: end})
	})
	collect(g, gctx, "maintenance by priority", &priorityRows, func(ctx context.Context) ([]dbgen.CountMaintenanceByPriorityRow, error) {
		return a.queries.CountMaintenanceByPriority(ctx, dbgen.CountMaintenanceByPriorityParams{HostelID: hostelID, StartTime: start, EndTime: end})
	})
	collect(g, gctx, "rooms by floor", &floorRows, func(ctx context.Context) ([]dbgen.CountRoomsByFloorRow, error) {
		return a.queries.CountRoomsByFloor(ctx, hostelID)
	})
	collect(g, gctx, "booking stay metrics", &stay, func(ctx context.Context) (dbgen.GetBookingStayMetricsRow, error) {
		return a.queries.GetBookingStayMetrics(ctx, dbgen.GetBookingStayMetricsParams{HostelID: hostelID, StartTime: start, EndTime: end})
	})

	if err := g.Wait(); err != nil {
		return nil, &AggregationError{Report: reportComprehensive, Err: err}
	}

	return &ComprehensiveReport{
		Financial:             financialSummary(paymentTotals, expenseTotals, payroll),
		ExpensesByCategory:    expenseCategories(categoryRows),
		MaintenanceByPriority: priorityBreakdown(priorityRows),
		OccupancyByFloor:      floorOccupancy(floorRows),
		Bookings:              bookingMetrics(stay),
		Filter:                filter.echo(),
		GeneratedAt:           now,
	}, nil
}

func financialSummary(payments dbgen.GetPaymentTotalsRow, expenses dbgen.GetExpenseTotalsRow, payroll dbgen.GetPayrollTotalsRow) FinancialSummary {
	revenue := finite(payments.CompletedRevenue)
	expenseAmount := finite(expenses.ApprovedAmount)
	payrollAmount := finite(payroll.PaidAmount)
	net := revenue - expenseAmount - payrollAmount

	var margin float64
	if revenue != 0 {
		margin = round2(net / revenue * 100)
	}

	return FinancialSummary{
		TotalRevenue:    revenue,
		TotalExpenses:   expenseAmount,
		TotalPayroll:    payrollAmount,
		NetIncome:       net,
		ProfitMargin:    margin,
		PaidSalaries:    payroll.PaidCount,
		PendingSalaries: payroll.PendingCount,
	}
}

func expenseCategories(rows []dbgen.ListExpensesByCategoryRow) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, CategoryTotal{
			Category: row.Category,
			Count:    row.ExpenseCount,
			Amount:   finite(row.ApprovedAmount),
		})
	}
	return out
}

var priorityRank = map[string]int{
	"URGENT": 0,
	"HIGH":   1,
	"MEDIUM": 2,
	"LOW":    3,
}

// priorityBreakdown folds (priority, status) counts into one row per
// priority, most urgent first. Unknown priorities sort last by name.
func priorityBreakdown(rows []dbgen.CountMaintenanceByPriorityRow) []PriorityBreakdown {
	byPriority := make(map[string]*PriorityBreakdown)
	out := make([]PriorityBreakdown, 0)
	order := make([]string, 0)
	for _, row := range rows {
		p, ok := byPriority[row.Priority]
		if !ok {
			p = &PriorityBreakdown{Priority: row.Priority}
			byPriority[row.Priority] = p
			order = append(order, row.Priority)
		}
		p.Total += row.RequestCount
		switch row.Status {
		case maintenanceStatusPending:
			p.Pending += row.RequestCount
		case maintenanceStatusInProgress:
			p.InProgress += row.RequestCount
		case maintenanceStatusCompleted:
			p.Completed += row.RequestCount
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		ri, iKnown := priorityRank[order[i]]
		rj, jKnown := priorityRank[order[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return order[i] < order[j]
		}
	})
	for _, priority := range order {
		out = append(out, *byPriority[priority])
	}
	return out
}

func floorOccupancy(rows []dbgen.CountRoomsByFloorRow) []FloorOccupancy {
	out := make([]FloorOccupancy, 0, len(rows))
	for _, row := range rows {
		out = append(out, FloorOccupancy{
			Floor:         row.Floor,
			TotalRooms:    row.TotalRooms,
			OccupiedRooms: row.OccupiedRooms,
			OccupancyRate: percentOf(row.OccupiedRooms, row.TotalRooms),
		})
	}
	return out
}

func bookingMetrics(row dbgen.GetBookingStayMetricsRow) BookingMetrics {
	m := BookingMetrics{
		TotalBookings:     row.BookingCount,
		CancelledBookings: row.CancelledCount,
	}
	if row.BookingCount > 0 {
		m.AverageStayNights = round2(row.AverageNights)
		m.CancellationRate = round2(float64(row.CancelledCount) / float64(row.BookingCount) * 100)
	}
	return m
}
