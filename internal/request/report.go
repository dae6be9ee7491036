package request

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/hostelhub/hostelhub/internal/stats"
)

const (
	dateLayout          = "2006-01-02"
	defaultRangeDays    = 30
	DateRangeToday      = "today"
	DateRangeLast7Days  = "last_7_days"
	DateRangeLast30Days = "last_30_days"
	DateRangeThisMonth  = "this_month"
	DateRangeThisYear   = "this_year"
	DateRangeCustom     = "custom"
)

var hostelIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// ParseHostelID validates a hostel_id query value. An empty value is valid and
// means all hostels.
func ParseHostelID(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", true
	}
	if !hostelIDPattern.MatchString(value) {
		return "", false
	}
	return value, true
}

// ReportFilter builds a stats filter from hostel_id, date_range, start_date
// and end_date. date_range accepts a preset name or "YYYY-MM-DD to YYYY-MM-DD".
// With no range parameters the report covers all time.
func ReportFilter(r *http.Request, now time.Time, loc *time.Location) (stats.ReportFilter, error) {
	query := r.URL.Query()

	hostelID, ok := ParseHostelID(query.Get("hostel_id"))
	if !ok {
		return stats.ReportFilter{}, &stats.InvalidFilterError{Field: "hostel_id", Reason: "must be alphanumeric"}
	}

	startRaw, endRaw, err := resolveDateRange(query.Get("date_range"), query.Get("start_date"), query.Get("end_date"), now, loc)
	if err != nil {
		return stats.ReportFilter{}, err
	}
	return stats.ParseFilter(hostelID, startRaw, endRaw, loc)
}

func resolveDateRange(rangeRaw, startRaw, endRaw string, now time.Time, loc *time.Location) (string, string, error) {
	rangeRaw = strings.TrimSpace(rangeRaw)
	preset := strings.ToLower(rangeRaw)

	if rangeRaw != "" && strings.Contains(rangeRaw, " to ") && !isKnownPreset(preset) {
		parts := strings.SplitN(rangeRaw, " to ", 2)
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
	}

	if preset == "" || preset == DateRangeCustom {
		return startRaw, endRaw, nil
	}

	startDate, endDate, ok := PresetDateRange(preset, now, loc)
	if !ok {
		return "", "", &stats.InvalidFilterError{Field: "date_range", Reason: fmt.Sprintf("must be one of %s", strings.Join(presetNames(), ", "))}
	}
	return startDate.Format(dateLayout), endDate.Format(dateLayout), nil
}

// PresetDateRange resolves a named range to inclusive calendar days ending today.
func PresetDateRange(preset string, now time.Time, loc *time.Location) (time.Time, time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch preset {
	case DateRangeToday:
		return endDate, endDate, true
	case DateRangeLast7Days:
		return endDate.AddDate(0, 0, -6), endDate, true
	case DateRangeLast30Days:
		return endDate.AddDate(0, 0, -(defaultRangeDays - 1)), endDate, true
	case DateRangeThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc), endDate, true
	case DateRangeThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc), endDate, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func isKnownPreset(preset string) bool {
	switch preset {
	case DateRangeToday, DateRangeLast7Days, DateRangeLast30Days, DateRangeThisMonth, DateRangeThisYear, DateRangeCustom:
		return true
	default:
		return false
	}
}

func presetNames() []string {
	return []string{DateRangeToday, DateRangeLast7Days, DateRangeLast30Days, DateRangeThisMonth, DateRangeThisYear}
}
