package stats

import (
	"time"

	dbgen "github.com/hostelhub/hostelhub/internal/db/generated"
)

const periodLayout = "2006-01"

// RevenuePoint is one calendar month of completed payments.
type RevenuePoint struct {
	Period       string  `json:"period"`
	Revenue      float64 `json:"revenue"`
	Transactions int64   `json:"transactions"`
}

// revenueTrend buckets payments into months calendar months starting at
// windowStart, in loc. Months without payments are present with zeros.
// Payments outside the window are ignored.
func revenueTrend(rows []dbgen.ListCompletedPaymentsSinceRow, windowStart time.Time, months int, loc *time.Location) []RevenuePoint {
	if months < 1 {
		months = 1
	}
	points := make([]RevenuePoint, months)
	index := make(map[string]int, months)
	for i := range points {
		period := windowStart.AddDate(0, i, 0).Format(periodLayout)
		points[i].Period = period
		index[period] = i
	}

	for _, row := range rows {
		i, ok := index[row.CreatedAt.In(loc).Format(periodLayout)]
		if !ok {
			continue
		}
		if row.Amount.Valid {
			points[i].Revenue += finite(row.Amount.Float64)
		}
		points[i].Transactions++
	}
	return points
}
