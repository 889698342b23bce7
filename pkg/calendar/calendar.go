// Package calendar derives month grids and per-day mood state from the
// journal projection. It holds no storage of its own.
package calendar

import (
	"context"
	"time"

	"tableflip.dev/moodbubbles/pkg/mood"
)

// MonthStart returns midnight on the first day of t's month, in t's location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	return MonthStart(t).AddDate(0, 1, -1).Day()
}

// DaysInMonth returns 1..N for the month containing monthStart.
func DaysInMonth(monthStart time.Time) []int {
	n := DaysIn(monthStart)
	days := make([]int, n)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// AdvanceMonth returns the first day of the month delta months away from
// current, rolling over year boundaries.
func AdvanceMonth(current time.Time, delta int) time.Time {
	return time.Date(current.Year(), current.Month()+time.Month(delta), 1, 0, 0, 0, 0, current.Location())
}

// StartWeekday is the weekday of the first day of the month.
func StartWeekday(monthStart time.Time) time.Weekday {
	return MonthStart(monthStart).Weekday()
}

// Kind tags a DayState.
type Kind int

const (
	// Empty days have no mood recorded.
	Empty Kind = iota
	// HasMood days carry an Entry.
	HasMood
)

func (k Kind) String() string {
	switch k {
	case HasMood:
		return "hasMood"
	default:
		return "empty"
	}
}

// DayState tells the renderer whether to draw a mood icon or the plain day.
type DayState struct {
	Day   int
	Kind  Kind
	Entry mood.Entry
}

// HasMood reports whether a mood is recorded for the day.
func (d DayState) HasMood() bool {
	return d.Kind == HasMood
}

// Projector supplies the month projection, keyed by day.
type Projector interface {
	LoadMonthProjection(ctx context.Context, monthStart time.Time) map[int]mood.Entry
}

// Model is the calendar view model.
type Model struct {
	Source Projector
}

// Month is one rendered month.
type Month struct {
	Start  time.Time
	Offset int // leading blank cells, Sunday first
	Days   []DayState
}

// DayState returns the state of day within the month of monthStart. Days
// outside the month are Empty.
func (m *Model) DayState(ctx context.Context, day int, monthStart time.Time) DayState {
	if day < 1 || day > DaysIn(monthStart) || m.Source == nil {
		return DayState{Day: day, Kind: Empty}
	}
	return stateFor(day, m.Source.LoadMonthProjection(ctx, MonthStart(monthStart)))
}

// Month derives every day of the month containing monthStart.
func (m *Model) Month(ctx context.Context, monthStart time.Time) Month {
	start := MonthStart(monthStart)
	var projection map[int]mood.Entry
	if m.Source != nil {
		projection = m.Source.LoadMonthProjection(ctx, start)
	}
	days := DaysInMonth(start)
	out := Month{
		Start:  start,
		Offset: int(start.Weekday()),
		Days:   make([]DayState, 0, len(days)),
	}
	for _, d := range days {
		out.Days = append(out.Days, stateFor(d, projection))
	}
	return out
}

// Count returns how many days of the month have a mood.
func (m Month) Count() int {
	n := 0
	for _, d := range m.Days {
		if d.HasMood() {
			n++
		}
	}
	return n
}

func stateFor(day int, projection map[int]mood.Entry) DayState {
	if e, ok := projection[day]; ok {
		return DayState{Day: day, Kind: HasMood, Entry: e}
	}
	return DayState{Day: day, Kind: Empty}
}
