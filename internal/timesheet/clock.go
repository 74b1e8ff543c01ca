// Package timesheet implements the time-accounting rules: entry
// validation, aggregation, view filtering, and derived notifications.
// Everything here is pure; the store and the UI sit on either side.
package timesheet

import (
	"time"

	"github.com/akyairhashvil/chronoguard/internal/config"
)

// ClockToMinutes converts an HH:mm string to minutes since midnight.
// Malformed input yields 0.
func ClockToMinutes(clock string) int {
	t, err := time.Parse(config.ClockLayout, clock)
	if err != nil {
		return 0
	}
	return t.Hour()*config.MinutesPerHour + t.Minute()
}

// DurationHours derives the billable duration from a start and end clock.
// The result is clamped to zero; it is never stored independently of the
// interval it was derived from.
func DurationHours(startTime, endTime string) float64 {
	minutes := ClockToMinutes(endTime) - ClockToMinutes(startTime)
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) / float64(config.MinutesPerHour)
}

// WeekStart returns the Monday of the ISO week containing date.
// Sunday belongs to the week that started the previous Monday.
func WeekStart(date string) (string, error) {
	t, err := time.Parse(config.DateLayout, date)
	if err != nil {
		return "", err
	}
	back := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -back).Format(config.DateLayout), nil
}

// WeekWindow returns the inclusive [Monday, Sunday] window containing date.
func WeekWindow(date string) (string, string, error) {
	start, err := WeekStart(date)
	if err != nil {
		return "", "", err
	}
	t, _ := time.Parse(config.DateLayout, start)
	return start, t.AddDate(0, 0, 6).Format(config.DateLayout), nil
}

// MonthWindow returns the inclusive [first, last] day window of the
// calendar month containing date.
func MonthWindow(date string) (string, string, error) {
	t, err := time.Parse(config.DateLayout, date)
	if err != nil {
		return "", "", err
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(config.DateLayout), last.Format(config.DateLayout), nil
}

// Today returns the reference date normalized to day granularity.
func Today() string {
	return time.Now().Format(config.DateLayout)
}

// dateInRange relies on both bounds and the date being zero-padded ISO
// strings, so lexicographic comparison matches chronological order.
func dateInRange(date, start, end string) bool {
	return date >= start && date <= end
}
