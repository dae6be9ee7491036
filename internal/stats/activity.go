package stats

import (
	"fmt"
	"time"

	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
)

const (
	activityBooking     = "booking"
	activityPayment     = "payment"
	activityMaintenance = "maintenance"

	unknownUser = "Unknown"
)

// Activity is the common shape of every recent-activity entry.
type Activity struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

type RecentActivities struct {
	Bookings    []Activity `json:"bookings"`
	Payments    []Activity `json:"payments"`
	Maintenance []Activity `json:"maintenance"`
}

func bookingActivities(rows []dbgen.ListRecentBookingsRow) []Activity {
	out := make([]Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, Activity{
			ID:        row.ID,
			Type:      activityBooking,
			Message:   fmt.Sprintf("New booking for Room %s", row.RoomNumber),
			User:      displayName(row.UserName),
			Timestamp: row.CreatedAt,
			Status:    row.Status,
		})
	}
	return out
}

func paymentActivities(rows []dbgen.ListRecentPaymentsRow) []Activity {
	out := make([]Activity, 0, len(rows))
	for _, row := range rows {
		var amount float64
		if row.Amount.Valid {
			amount = finite(row.Amount.Float64)
		}
		out = append(out, Activity{
			ID:        row.ID,
			Type:      activityPayment,
			Message:   fmt.Sprintf("Payment of %.2f received for Room %s", amount, row.RoomNumber),
			User:      displayName(row.UserName),
			Timestamp: row.CreatedAt,
			Status:    row.Status,
		})
	}
	return out
}

func maintenanceActivities(rows []dbgen.ListRecentMaintenanceRow) []Activity {
	out := make([]Activity, 0, len(rows))
	for _, row := range rows {
		reporter := unknownUser
		if row.ReporterName.Valid {
			reporter = displayName(row.ReporterName.String)
		}
		out = append(out, Activity{
			ID:        row.ID,
			Type:      activityMaintenance,
			Message:   fmt.Sprintf("Maintenance request for Room %s: %s", row.RoomNumber, row.Title),
			User:      reporter,
			Timestamp: row.ReportedAt,
			Status:    row.Status,
		})
	}
	return out
}

func displayName(name string) string {
	if name == "" {
		return unknownUser
	}
	return name
}
