package stats

import "time"

// Clock supplies "now" for the day and month windows.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports At.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// dayWindow returns [midnight, next midnight) for the calendar day of now.
func dayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// monthWindow returns [first of month, first of next month) for the month of now.
func monthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// trendWindowStart returns the first day of the oldest month in a trailing
// window of the given number of calendar months ending with the month of now.
func trendWindowStart(now time.Time, months int) time.Time {
	if months < 1 {
		months = 1
	}
	return time.Date(now.Year(), now.Month()-time.Month(months-1), 1, 0, 0, 0, 0, now.Location())
}
