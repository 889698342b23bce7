package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/moodbubbles/pkg/journal"
	"tableflip.dev/moodbubbles/pkg/logging"
	"tableflip.dev/moodbubbles/pkg/mood"
	"tableflip.dev/moodbubbles/pkg/store"
)

var fixedNow = time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

func newService(seed map[string]string) (*Service, *store.Memory) {
	m := store.NewMemory(seed)
	return &Service{
		Records: journal.New(m, journal.WithLogger(logging.Discard())),
		Now:     func() time.Time { return fixedNow },
		IntN:    func(int) int { return 0 },
	}, m
}

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(nil)

	e, err := svc.Set(ctx, fixedNow, "cher")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if e.MoodID != "cherry" || e.Date != "2025-03-15" {
		t.Fatalf("unexpected entry %+v", e)
	}
	got, ok, err := svc.Get(ctx, fixedNow)
	if err != nil || !ok {
		t.Fatalf("get: %v %v", ok, err)
	}
	if got != e {
		t.Fatalf("expected %+v, got %+v", e, got)
	}
	if _, err := svc.Set(ctx, fixedNow, "kiwi"); !errors.Is(err, mood.ErrUnknownMood) {
		t.Fatalf("expected ErrUnknownMood, got %v", err)
	}
}

func TestTodayWithTip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(nil)

	res, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if res.HasMood || res.Tip != "" {
		t.Fatalf("expected no mood and no tip, got %+v", res)
	}

	_, _ = svc.Set(ctx, fixedNow, "pineapple")
	res, err = svc.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if !res.HasMood || res.Entry.MoodID != "pineapple" {
		t.Fatalf("unexpected today %+v", res)
	}
	if res.Tip != mood.Tips("pineapple")[0] {
		t.Fatalf("unexpected tip %q", res.Tip)
	}
}

func TestTodayLegacyIdGetsDefaultTip(t *testing.T) {
	svc, _ := newService(map[string]string{
		journal.Key("2025-03-15"): `{"fruit":"strawberry","emotion":"Love"}`,
	})
	res, err := svc.Today(context.Background())
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if !res.HasMood || res.Entry.Emotion != "Love" || res.Tip != mood.DefaultTip {
		t.Fatalf("unexpected today %+v", res)
	}
}

func TestCalendarAndClear(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(nil)
	_, _ = svc.Set(ctx, fixedNow, "grape")

	month, err := svc.Calendar(ctx, fixedNow)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if len(month.Days) != 31 || month.Count() != 1 || !month.Days[14].HasMood() {
		t.Fatalf("unexpected month %+v", month)
	}

	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected empty medium, got %d keys", m.Len())
	}
	month, _ = svc.Calendar(ctx, fixedNow)
	if month.Count() != 0 {
		t.Fatalf("expected empty month after clear")
	}
}

func TestNoRecords(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Set(context.Background(), fixedNow, "grape"); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := svc.Report(context.Background(), fixedNow, fixedNow); err == nil {
		t.Fatalf("expected error")
	}
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(map[string]string{
		journal.Key("2025-03-01"): `{"fruit":"cherry","emotion":"Passion / Tension"}`,
		journal.Key("2025-03-02"): `{"fruit":"cherry","emotion":"Passion / Tension"}`,
		journal.Key("2025-03-03"): `{"fruit":"grape","emotion":"Peace / Harmony"}`,
		journal.Key("2025-03-04"): `{"fruit":"strawberry","emotion":"Love"}`,
		journal.Key("2025-02-01"): `{"fruit":"orange","emotion":"Energy / Optimism"}`,
	})

	until := fixedNow
	since := until.AddDate(0, 0, -14)
	res, err := svc.Report(ctx, until, since)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !res.Since.Equal(since) || !res.Until.Equal(until) {
		t.Fatalf("bounds should be swapped into order")
	}
	if res.Total != 4 || res.Unknown != 1 {
		t.Fatalf("unexpected totals %d/%d", res.Total, res.Unknown)
	}
	if len(res.Counts) != len(mood.Catalog()) {
		t.Fatalf("expected one count per mood")
	}
	if res.Counts[0].Mood.ID != "cherry" || res.Counts[0].Count != 2 {
		t.Fatalf("unexpected cherry count %+v", res.Counts[0])
	}
	dom, ok := res.Dominant()
	if !ok || dom.ID != "cherry" {
		t.Fatalf("expected cherry dominant, got %v %v", dom.ID, ok)
	}
	if share := res.Share(res.Counts[0]); share != 0.5 {
		t.Fatalf("expected share 0.5, got %v", share)
	}
}

func TestReportEmpty(t *testing.T) {
	svc, _ := newService(nil)
	res, err := svc.Report(context.Background(), fixedNow.AddDate(0, 0, -7), fixedNow)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if res.Total != 0 {
		t.Fatalf("expected empty report")
	}
	if _, ok := res.Dominant(); ok {
		t.Fatalf("expected no dominant mood")
	}
}
