package journal

import (
	"sort"
	"time"

	"tableflip.dev/moodbubbles/pkg/mood"
)

// Snapshot is a read-only copy of the date to entry mapping.
type Snapshot map[string]mood.Entry

// Dates returns the snapshot's dates in ascending order.
func (s Snapshot) Dates() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Month returns the entries dated within the month containing monthStart,
// keyed by day of month.
func (s Snapshot) Month(monthStart time.Time) map[int]mood.Entry {
	out := make(map[int]mood.Entry)
	for date, e := range s {
		t, err := time.Parse(mood.LayoutISO, date)
		if err != nil {
			continue
		}
		if t.Year() == monthStart.Year() && t.Month() == monthStart.Month() {
			out[t.Day()] = e
		}
	}
	return out
}

// Between returns entries dated within [since, until], compared by calendar
// date in the location of since.
func (s Snapshot) Between(since, until time.Time) []mood.Entry {
	if since.After(until) {
		since, until = until, since
	}
	loc := since.Location()
	from := mood.DateKey(since)
	to := mood.DateKey(until.In(loc))

	out := make([]mood.Entry, 0)
	for _, date := range s.Dates() {
		if date < from || date > to {
			continue
		}
		out = append(out, s[date])
	}
	return out
}
