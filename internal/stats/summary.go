package stats

import (
	"math"

	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
)

const (
	roomStatusAvailable   = "AVAILABLE"
	roomStatusOccupied    = "OCCUPIED"
	roomStatusMaintenance = "MAINTENANCE"
	roomStatusOutOfOrder  = "OUT_OF_ORDER"

	roleGuest  = "GUEST"
	roleStaff  = "STAFF"
	roleWarden = "WARDEN"
	roleAdmin  = "ADMIN"

	bookingStatusPending   = "PENDING"
	bookingStatusCheckedIn = "CHECKED_IN"

	maintenanceStatusPending    = "PENDING"
	maintenanceStatusInProgress = "IN_PROGRESS"
	maintenanceStatusCompleted  = "COMPLETED"
)

type RoomSummary struct {
	TotalRooms       int64 `json:"totalRooms"`
	OccupiedRooms    int64 `json:"occupiedRooms"`
	AvailableRooms   int64 `json:"availableRooms"`
	MaintenanceRooms int64 `json:"maintenanceRooms"`
	OutOfOrderRooms  int64 `json:"outOfOrderRooms"`
	OccupancyRate    int64 `json:"occupancyRate"`
}

type UserSummary struct {
	TotalUsers  int64 `json:"totalUsers"`
	TotalGuests int64 `json:"totalGuests"`
	TotalStaff  int64 `json:"totalStaff"`
}

type BookingSummary struct {
	TotalBookings   int64 `json:"totalBookings"`
	ActiveBookings  int64 `json:"activeBookings"`
	PendingBookings int64 `json:"pendingBookings"`
	TodayCheckIns   int64 `json:"todayCheckIns"`
	TodayCheckOuts  int64 `json:"todayCheckOuts"`
}

type PaymentSummary struct {
	TotalPayments     int64   `json:"totalPayments"`
	CompletedPayments int64   `json:"completedPayments"`
	PendingPayments   int64   `json:"pendingPayments"`
	TotalRevenue      float64 `json:"totalRevenue"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
}

type MaintenanceSummary struct {
	TotalMaintenance      int64 `json:"totalMaintenance"`
	PendingMaintenance    int64 `json:"pendingMaintenance"`
	InProgressMaintenance int64 `json:"inProgressMaintenance"`
	CompletedMaintenance  int64 `json:"completedMaintenance"`
}

type ExpenseSummary struct {
	TotalExpenses         int64   `json:"totalExpenses"`
	ApprovedExpenseAmount float64 `json:"approvedExpenseAmount"`
}

// Summary flattens every metric group into one JSON object.
type Summary struct {
	RoomSummary
	UserSummary
	BookingSummary
	PaymentSummary
	MaintenanceSummary
	ExpenseSummary
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MethodTotal struct {
	Method string  `json:"method"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// percentOf returns round(part/whole*100), or 0 when whole is not positive.
func percentOf(part, whole int64) int64 {
	if whole <= 0 {
		return 0
	}
	return int64(math.Round(float64(part) / float64(whole) * 100))
}

// finite replaces NaN and infinities with 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(finite(v)*100) / 100
}

func roomSummary(rows []dbgen.CountRoomsByStatusRow) RoomSummary {
	var s RoomSummary
	for _, row := range rows {
		s.TotalRooms += row.RoomCount
		switch row.Status {
		case roomStatusOccupied:
			s.OccupiedRooms += row.RoomCount
		case roomStatusAvailable:
			s.AvailableRooms += row.RoomCount
		case roomStatusMaintenance:
			s.MaintenanceRooms += row.RoomCount
		case roomStatusOutOfOrder:
			s.OutOfOrderRooms += row.RoomCount
		}
	}
	s.OccupancyRate = percentOf(s.OccupiedRooms, s.TotalRooms)
	return s
}

func userSummary(rows []dbgen.CountUsersByRoleRow) UserSummary {
	var s UserSummary
	for _, row := range rows {
		s.TotalUsers += row.UserCount
		switch row.Role {
		case roleGuest:
			s.TotalGuests += row.UserCount
		case roleStaff, roleWarden, roleAdmin:
			s.TotalStaff += row.UserCount
		}
	}
	return s
}

// bookingSummary derives totals and the status distribution from the same rows,
// so the distribution always sums to TotalBookings.
func bookingSummary(rows []dbgen.CountBookingsByStatusRow, checkIns, checkOuts int64) (BookingSummary, []StatusCount) {
	s := BookingSummary{TodayCheckIns: checkIns, TodayCheckOuts: checkOuts}
	distribution := make([]StatusCount, 0, len(rows))
	for _, row := range rows {
		s.TotalBookings += row.BookingCount
		switch row.Status {
		case bookingStatusCheckedIn:
			s.ActiveBookings += row.BookingCount
		case bookingStatusPending:
			s.PendingBookings += row.BookingCount
		}
		distribution = append(distribution, StatusCount{Status: row.Status, Count: row.BookingCount})
	}
	return s, distribution
}

func paymentSummary(totals dbgen.GetPaymentTotalsRow, monthlyRevenue float64) PaymentSummary {
	return PaymentSummary{
		TotalPayments:     totals.TotalPayments,
		CompletedPayments: totals.CompletedPayments,
		PendingPayments:   totals.PendingPayments,
		TotalRevenue:      finite(totals.CompletedRevenue),
		MonthlyRevenue:    finite(monthlyRevenue),
	}
}

func paymentMethods(rows []dbgen.CountPaymentsByMethodRow) []MethodTotal {
	methods := make([]MethodTotal, 0, len(rows))
	for _, row := range rows {
		methods = append(methods, MethodTotal{
			Method: row.Method,
			Count:  row.PaymentCount,
			Amount: finite(row.TotalAmount),
		})
	}
	return methods
}

func maintenanceSummary(rows []dbgen.CountMaintenanceByStatusRow, completedInRange int64) MaintenanceSummary {
	s := MaintenanceSummary{CompletedMaintenance: completedInRange}
	for _, row := range rows {
		s.TotalMaintenance += row.RequestCount
		switch row.Status {
		case maintenanceStatusPending:
			s.PendingMaintenance += row.RequestCount
		case maintenanceStatusInProgress:
			s.InProgressMaintenance += row.RequestCount
		}
	}
	return s
}

func expenseSummary(totals dbgen.GetExpenseTotalsRow) ExpenseSummary {
	return ExpenseSummary{
		TotalExpenses:         totals.TotalExpenses,
		ApprovedExpenseAmount: finite(totals.ApprovedAmount),
	}
}
