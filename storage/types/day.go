package types

import "time"

// dayFormat is the fixed, locale-independent calendar date layout
const dayFormat = "2006-01-02"

// Noon normalizes t to 12:00:00 UTC on the same calendar date. Day keys are
// pinned to a fixed time-of-day so that timezone drift can never produce two
// rows for the same logical day
func Noon(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 12, 0, 0, 0, time.UTC)
}

// DayAt constructs the noon-UTC day key for the given calendar date
func DayAt(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// DaysInRange expands the inclusive [start, end] pair into the full daily
// sequence, stepping by exactly one calendar day. Both bounds must already be
// normalized to the same time-of-day, with start <= end
func DaysInRange(start, end time.Time) []time.Time {
	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}

// FormatDay renders a date as a fixed-width YYYY-MM-DD string
func FormatDay(t time.Time) string {
	return t.UTC().Format(dayFormat)
}

// ParseDay parses a YYYY-MM-DD string into a midnight-UTC date
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayFormat, s)
}
