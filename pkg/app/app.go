package app

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"tableflip.dev/moodbubbles/pkg/calendar"
	"tableflip.dev/moodbubbles/pkg/journal"
	"tableflip.dev/moodbubbles/pkg/mood"
)

// Service provides the journal operations shared by the CLI runners.
// It wraps the record store and the calendar view model.
type Service struct {
	Records *journal.Records
	// Now is the date source; time.Now when nil.
	Now func() time.Time
	// IntN picks tips; rand.IntN when nil.
	IntN func(int) int
}

var errNoRecords = errors.New("app: no records configured")

// TodayResult is today's mood and the tip for it.
type TodayResult struct {
	Date    time.Time
	Entry   mood.Entry
	HasMood bool
	Tip     string
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) intn() func(int) int {
	if s.IntN != nil {
		return s.IntN
	}
	return rand.IntN
}

// Set records fruit for the day of on. fruit may be an id, an icon, or an id
// prefix.
func (s *Service) Set(ctx context.Context, on time.Time, fruit string) (mood.Entry, error) {
	if s.Records == nil {
		return mood.Entry{}, errNoRecords
	}
	m, err := mood.Parse(fruit)
	if err != nil {
		return mood.Entry{}, err
	}
	return s.Records.SetMood(ctx, mood.DateKey(on), m.ID)
}

// Get returns the mood for the day of on.
func (s *Service) Get(ctx context.Context, on time.Time) (mood.Entry, bool, error) {
	if s.Records == nil {
		return mood.Entry{}, false, errNoRecords
	}
	e, ok := s.Records.GetMood(ctx, mood.DateKey(on))
	return e, ok, nil
}

// Today returns today's mood with a tip. Without a mood there is no tip.
func (s *Service) Today(ctx context.Context) (TodayResult, error) {
	now := s.now()
	e, ok, err := s.Get(ctx, now)
	if err != nil {
		return TodayResult{}, err
	}
	res := TodayResult{Date: now, Entry: e, HasMood: ok}
	if ok {
		res.Tip = mood.PickTip(e.MoodID, s.intn())
	}
	return res, nil
}

// Calendar derives the month containing monthStart.
func (s *Service) Calendar(ctx context.Context, monthStart time.Time) (calendar.Month, error) {
	if s.Records == nil {
		return calendar.Month{}, errNoRecords
	}
	m := calendar.Model{Source: s.Records}
	return m.Month(ctx, monthStart), nil
}

// Clear removes every recorded mood.
func (s *Service) Clear(ctx context.Context) error {
	if s.Records == nil {
		return errNoRecords
	}
	s.Records.ClearAll(ctx)
	return nil
}
