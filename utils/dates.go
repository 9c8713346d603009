package utils

import "time"

// DateLayout is the calendar date form used everywhere: local YYYY-MM-DD.
const DateLayout = "2006-01-02"

// LocalDate buckets an instant into the user's local calendar date, so that
// "today" matches the wall clock rather than UTC.
func LocalDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// LastNDates returns the n local calendar dates ending at t inclusive,
// oldest first.
func LastNDates(t time.Time, n int) []string {
	dates := make([]string, n)
	for i := 0; i < n; i++ {
		dates[i] = LocalDate(t.AddDate(0, 0, -(n - 1 - i)))
	}
	return dates
}

// ShortWeekday returns the three-letter weekday label for a YYYY-MM-DD date.
func ShortWeekday(date string) string {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil && len(s) == len(DateLayout)
}
