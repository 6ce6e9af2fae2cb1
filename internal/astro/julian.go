package astro

import (
	"fmt"
	"time"
)

// Layouts for the wire date/time formats.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"

	// DefaultClock is applied to charts requested with a date only
	// (transit, heliocentric).
	DefaultClock = "12:00:00"
)

// The Unix epoch (1970-01-01T00:00:00Z) expressed as a Julian day.
const unixEpochJD = 2440587.5

// JulianDay converts a moment to a Julian day in universal time.
func JulianDay(t time.Time) float64 {
	return unixEpochJD + float64(t.Unix())/86400.0
}

// ParseMoment parses a calendar date and clock time into a moment. Input
// timestamps carry no zone and are treated as universal time, matching the
// convention the ephemeris boundary expects.
func ParseMoment(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse moment %q %q: %w", date, clock, err)
	}
	return t, nil
}

// ParseDate parses a calendar date at midnight universal time.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	return t, nil
}
