// Package timeutil is the single place calendar-day boundaries are computed.
// All bucketing uses the server's local zone; the deployment runs in one
// fixed timezone and per-user zones are out of scope.
package timeutil

import "time"

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DayKey formats t as YYYY-MM-DD for grouping.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
