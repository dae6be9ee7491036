package stats

import (
	"database/sql"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ReportFilter scopes a report to an optional hostel and an optional date range.
// It is immutable once built; every sub-query of a report receives the same value.
type ReportFilter struct {
	hostelID  string
	dateRange *DateRange
}

// NewReportFilter validates and copies its inputs. An empty hostelID means all hostels.
func NewReportFilter(hostelID string, dateRange *DateRange) (ReportFilter, error) {
	filter := ReportFilter{hostelID: strings.TrimSpace(hostelID)}
	if dateRange == nil {
		return filter, nil
	}
	if dateRange.Start.IsZero() || dateRange.End.IsZero() {
		return ReportFilter{}, &InvalidFilterError{Field: "date_range", Reason: "requires both start_date and end_date"}
	}
	if dateRange.End.Before(dateRange.Start) {
		return ReportFilter{}, &InvalidFilterError{Field: "end_date", Reason: "must not be before start_date"}
	}
	rng := *dateRange
	filter.dateRange = &rng
	return filter, nil
}

// ParseFilter builds a filter from raw request values. Date-only values
// (YYYY-MM-DD) cover whole calendar days in loc; RFC 3339 timestamps are used
// verbatim. Both bounds or neither must be given.
func ParseFilter(hostelID, startRaw, endRaw string, loc *time.Location) (ReportFilter, error) {
	startRaw = strings.TrimSpace(startRaw)
	endRaw = strings.TrimSpace(endRaw)
	if loc == nil {
		loc = time.Local
	}

	if startRaw == "" && endRaw == "" {
		return NewReportFilter(hostelID, nil)
	}
	if startRaw == "" || endRaw == "" {
		return ReportFilter{}, &InvalidFilterError{Field: "date_range", Reason: "requires both start_date and end_date"}
	}

	start, err := parseBound(startRaw, loc, false)
	if err != nil {
		return ReportFilter{}, &InvalidFilterError{Field: "start_date", Reason: "must be YYYY-MM-DD or an RFC 3339 timestamp"}
	}
	end, err := parseBound(endRaw, loc, true)
	if err != nil {
		return ReportFilter{}, &InvalidFilterError{Field: "end_date", Reason: "must be YYYY-MM-DD or an RFC 3339 timestamp"}
	}

	return NewReportFilter(hostelID, &DateRange{Start: start, End: end})
}

func parseBound(raw string, loc *time.Location, isEnd bool) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts, nil
	}
	day, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return time.Time{}, err
	}
	if isEnd {
		return day.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return day, nil
}

// HostelID returns the hostel scope, or "" for all hostels.
func (f ReportFilter) HostelID() string {
	return f.hostelID
}

// DateRange returns the date range and whether one is set.
func (f ReportFilter) DateRange() (DateRange, bool) {
	if f.dateRange == nil {
		return DateRange{}, false
	}
	return *f.dateRange, true
}

// storeRange converts the range into nullable UTC bounds for the query layer.
func (f ReportFilter) storeRange() (sql.NullTime, sql.NullTime) {
	if f.dateRange == nil {
		return sql.NullTime{}, sql.NullTime{}
	}
	return sql.NullTime{Time: f.dateRange.Start.UTC(), Valid: true},
		sql.NullTime{Time: f.dateRange.End.UTC(), Valid: true}
}

// FilterEcho reports back the filter a report was computed with.
type FilterEcho struct {
	HostelID  string     `json:"hostelId,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

func (f ReportFilter) echo() FilterEcho {
	echo := FilterEcho{HostelID: f.hostelID}
	if f.dateRange != nil {
		start, end := f.dateRange.Start, f.dateRange.End
		echo.StartDate = &start
		echo.EndDate = &end
	}
	return echo
}
