package request

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hostelhub/hostelhub/internal/stats"
)

var fixedNow = time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC)

func TestParseHostelID(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   string
		wantOK bool
	}{
		{name: "empty", value: "", want: "", wantOK: true},
		{name: "whitespace", value: "   ", want: "", wantOK: true},
		{name: "uuid", value: "4b7d0a3e-1f2c-4c5d-9e8f-0a1b2c3d4e5f", want: "4b7d0a3e-1f2c-4c5d-9e8f-0a1b2c3d4e5f", wantOK: true},
		{name: "trimmed", value: " hostel_1 ", want: "hostel_1", wantOK: true},
		{name: "quote", value: "h1'--", wantOK: false},
		{name: "leading_dash", value: "-h1", wantOK: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := ParseHostelID(test.value)
			if ok != test.wantOK || got != test.want {
				t.Fatalf("ParseHostelID(%q) = (%q, %t), want (%q, %t)", test.value, got, ok, test.want, test.wantOK)
			}
		})
	}
}

func TestPresetDateRange(t *testing.T) {
	tests := []struct {
		preset    string
		wantStart string
		wantEnd   string
	}{
		{DateRangeToday, "2026-03-15", "2026-03-15"},
		{DateRangeLast7Days, "2026-03-09", "2026-03-15"},
		{DateRangeLast30Days, "2026-02-14", "2026-03-15"},
		{DateRangeThisMonth, "2026-03-01", "2026-03-15"},
		{DateRangeThisYear, "2026-01-01", "2026-03-15"},
	}

	for _, test := range tests {
		t.Run(test.preset, func(t *testing.T) {
			start, end, ok := PresetDateRange(test.preset, fixedNow, time.UTC)
			if !ok {
				t.Fatalf("expected preset %q to resolve", test.preset)
			}
			if got := start.Format(dateLayout); got != test.wantStart {
				t.Fatalf("start = %s, want %s", got, test.wantStart)
			}
			if got := end.Format(dateLayout); got != test.wantEnd {
				t.Fatalf("end = %s, want %s", got, test.wantEnd)
			}
		})
	}

	if _, _, ok := PresetDateRange("fortnight", fixedNow, time.UTC); ok {
		t.Fatal("expected unknown preset to fail")
	}
}

func TestReportFilterFromQuery(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/dashboard/stats?hostel_id=h1&date_range=this_month", nil)
	filter, err := ReportFilter(req, fixedNow, time.UTC)
	if err != nil {
		t.Fatalf("ReportFilter: %v", err)
	}
	if filter.HostelID() != "h1" {
		t.Fatalf("expected hostel h1, got %q", filter.HostelID())
	}
	rng, ok := filter.DateRange()
	if !ok {
		t.Fatal("expected a date range")
	}
	if want := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC); !rng.Start.Equal(want) {
		t.Fatalf("start = %v, want %v", rng.Start, want)
	}
	if want := time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond); !rng.End.Equal(want) {
		t.Fatalf("end = %v, want %v", rng.End, want)
	}
}

func TestReportFilterCombinedRange(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/dashboard/stats?date_range=2026-01-01+to+2026-01-31", nil)
	filter, err := ReportFilter(req, fixedNow, time.UTC)
	if err != nil {
		t.Fatalf("ReportFilter: %v", err)
	}
	rng, _ := filter.DateRange()
	if rng.Start.Format(dateLayout) != "2026-01-01" || rng.End.Format(dateLayout) != "2026-01-31" {
		t.Fatalf("unexpected range %v - %v", rng.Start, rng.End)
	}
}

func TestReportFilterNoParametersMeansAllTime(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/dashboard/stats", nil)
	filter, err := ReportFilter(req, fixedNow, time.UTC)
	if err != nil {
		t.Fatalf("ReportFilter: %v", err)
	}
	if _, ok := filter.DateRange(); ok {
		t.Fatal("expected no date range")
	}
	if filter.HostelID() != "" {
		t.Fatalf("expected global scope, got %q", filter.HostelID())
	}
}

func TestReportFilterRejectsBadInput(t *testing.T) {
	tests := []string{
		"/api/v1/dashboard/stats?hostel_id=bad%20id",
		"/api/v1/dashboard/stats?date_range=fortnight",
		"/api/v1/dashboard/stats?start_date=2026-01-01",
		"/api/v1/dashboard/stats?start_date=2026-02-01&end_date=2026-01-01",
		"/api/v1/dashboard/stats?date_range=custom&start_date=nope&end_date=2026-01-01",
	}
	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest("GET", target, nil)
			if _, err := ReportFilter(req, fixedNow, time.UTC); !errors.Is(err, stats.ErrInvalidFilter) {
				t.Fatalf("expected ErrInvalidFilter, got %v", err)
			}
		})
	}
}
