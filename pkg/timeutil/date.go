package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO      = "2006-01-02"
	layoutShort    = "1/2"
	layoutMonthISO = "2006-01"
	layoutMonthUS  = "January 2006"
)

// Today returns midnight of now's day in now's location.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ParseDate understands "today", "yesterday", "tomorrow", "2025-03-15", and
// "3/15". A month/day without a year is the most recent such day on or before
// today, since moods are recorded for the past.
func ParseDate(input string, now time.Time) (time.Time, error) {
	v := strings.ToLower(strings.TrimSpace(input))
	today := Today(now)
	switch v {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if t, err := time.ParseInLocation(layoutISO, v, now.Location()); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutShort, v, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or M/D", input)
	}
	return recentDate(t.Month(), t.Day(), today)
}

// recentDate is the latest month/day on or before today. Feb 29 walks back
// to the last leap year, at most eight years away.
func recentDate(month time.Month, day int, today time.Time) (time.Time, error) {
	for year := today.Year(); year >= today.Year()-8; year-- {
		t := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
		if t.Month() != month || t.Day() != day || t.After(today) {
			continue
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %d/%d", month, day)
}

// ParseMonth understands "", "this", "next", "last", "2025-03", and
// "March 2025", returning the first day of that month.
func ParseMonth(input string, now time.Time) (time.Time, error) {
	v := strings.TrimSpace(input)
	this := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	switch strings.ToLower(v) {
	case "", "this":
		return this, nil
	case "next":
		return this.AddDate(0, 1, 0), nil
	case "last", "prev", "previous":
		return this.AddDate(0, -1, 0), nil
	}
	for _, layout := range []string{layoutMonthISO, layoutMonthUS} {
		if t, err := time.ParseInLocation(layout, v, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM or \"January 2006\"", input)
}
