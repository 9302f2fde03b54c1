package domain

import "time"

// DateLayout is the wire and storage format for calendar dates.
// The rental engine works with whole days only; no time-of-day is involved.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ToDate truncates t to its calendar date at UTC midnight.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date at UTC midnight.
func Today() time.Time {
	return ToDate(time.Now().UTC())
}

// DaysBetween returns the number of calendar days from a to b.
// Both inputs are truncated to dates first, so the count is exact.
func DaysBetween(a, b time.Time) int {
	return int(ToDate(b).Sub(ToDate(a)).Hours() / 24)
}

// FormatDate renders a date in the yyyy-mm-dd wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
