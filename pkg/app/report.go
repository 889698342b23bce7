package app

import (
	"context"
	"time"

	"tableflip.dev/moodbubbles/pkg/mood"
)

// MoodCount is how often one mood was recorded in a report window.
type MoodCount struct {
	Mood  mood.Mood
	Count int
}

// ReportResult summarises the moods recorded between Since and Until.
type ReportResult struct {
	Since   time.Time
	Until   time.Time
	Counts  []MoodCount
	Unknown int
	Entries []mood.Entry
	Total   int
}

// Share is the fraction of recorded days that had mood c.
func (r ReportResult) Share(c MoodCount) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(c.Count) / float64(r.Total)
}

// Dominant returns the most frequent mood; ties go to catalog order.
func (r ReportResult) Dominant() (mood.Mood, bool) {
	best := MoodCount{}
	for _, c := range r.Counts {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Mood, best.Count > 0
}

// Report counts the moods recorded on days within [since, until]. Counts are
// listed in catalog order; ids no longer in the catalog are counted as
// Unknown.
func (s *Service) Report(ctx context.Context, since, until time.Time) (ReportResult, error) {
	if s.Records == nil {
		return ReportResult{}, errNoRecords
	}
	if since.After(until) {
		since, until = until, since
	}
	entries := s.Records.Load(ctx).Between(since, until)

	catalog := mood.Catalog()
	counts := make([]MoodCount, len(catalog))
	pos := make(map[string]int, len(catalog))
	for i, m := range catalog {
		counts[i] = MoodCount{Mood: m}
		pos[m.ID] = i
	}

	res := ReportResult{Since: since, Until: until, Entries: entries}
	for _, e := range entries {
		res.Total++
		i, ok := pos[e.MoodID]
		if !ok {
			res.Unknown++
			continue
		}
		counts[i].Count++
	}
	res.Counts = counts
	return res, nil
}
