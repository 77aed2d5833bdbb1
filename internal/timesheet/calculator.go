package timesheet

import (
	"math"
	"time"

	"shiftlog/internal/models"
)

const (
	// ClockLayout is the wall-clock format for shift start and end times.
	ClockLayout = "15:04"
	// DateLayout is the ISO calendar date format for shift dates.
	DateLayout = "2006-01-02"
)

// ParseClock validates an HH:MM time-of-day value.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, models.ErrInvalidTimeFormat
	}
	return t, nil
}

// ValidDate reports whether s is a well-formed ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current calendar date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// WorkedHours computes the net worked hours between two HH:MM times minus
// break minutes. A shift whose end is earlier than its start is treated as
// crossing midnight and rolls over to the next day. If the break exceeds the
// span the result is clamped to 0 rather than going negative, so downstream
// totals stay non-negative.
func WorkedHours(start, end string, breakMinutes int) (float64, error) {
	startAt, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endAt, err := ParseClock(end)
	if err != nil {
		return 0, err
	}

	if endAt.Before(startAt) {
		endAt = endAt.Add(24 * time.Hour)
	}

	worked := endAt.Sub(startAt) - time.Duration(breakMinutes)*time.Minute
	if worked < 0 {
		worked = 0
	}
	return RoundHours(worked.Hours()), nil
}

// RoundHours rounds decimal hours to 2 places. Used both per record and for
// day totals so the two always agree.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
