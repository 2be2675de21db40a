package utils

import (
	"time"
)

// NowUTC returns the current time in UTC, which is the reference timezone for
// every persisted timestamp in the system.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatTimestamp renders a timestamp the way CSV exports expect it
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

// FormatMinuteUTC renders a timestamp at minute precision with an explicit
// UTC marker, as used in incident narratives.
func FormatMinuteUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04") + " UTC"
}

// SinceWindow converts a since_minutes query parameter into the cutoff instant
func SinceWindow(sinceMinutes int) time.Time {
	return NowUTC().Add(-time.Duration(sinceMinutes) * time.Minute)
}
