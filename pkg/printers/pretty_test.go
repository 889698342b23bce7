package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/calendar"
	"tableflip.dev/moodbubbles/pkg/mood"
)

func init() {
	color.NoColor = true
}

func marchWith(entries map[int]string) calendar.Month {
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	m := calendar.Month{Start: start, Offset: int(calendar.StartWeekday(start))}
	for _, d := range calendar.DaysInMonth(start) {
		st := calendar.DayState{Day: d, Kind: calendar.Empty}
		if id, ok := entries[d]; ok {
			e, _ := mood.New(start.AddDate(0, 0, d-1).Format(mood.LayoutISO), id)
			st = calendar.DayState{Day: d, Kind: calendar.HasMood, Entry: e}
		}
		m.Days = append(m.Days, st)
	}
	return m
}

func TestRenderMonthPlain(t *testing.T) {
	m := marchWith(map[int]string{1: "cherry", 15: "grape"})
	out := RenderMonth(m, PlainCalendarOptions())
	lines := strings.Split(out, "\n")

	// title, header, and six week rows for a month starting on Saturday
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), out)
	}
	if strings.TrimSpace(lines[0]) != "March 2025" {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if lines[1] != weekHeader {
		t.Fatalf("unexpected header %q", lines[1])
	}
	if strings.TrimSpace(lines[2]) != "🍒" {
		t.Fatalf("expected first week to hold only the cherry, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[2], strings.Repeat(" ", 18)) {
		t.Fatalf("expected six leading blank cells, got %q", lines[2])
	}
	if lines[3] != " 2  3  4  5  6  7  8" {
		t.Fatalf("unexpected second week %q", lines[3])
	}
	if !strings.HasSuffix(lines[4], "🍇") {
		t.Fatalf("expected the 15th to be a grape, got %q", lines[4])
	}
	if strings.TrimSpace(lines[7]) != "30 31" {
		t.Fatalf("unexpected last week %q", lines[7])
	}
}

func TestRenderMonthZero(t *testing.T) {
	if got := RenderMonth(calendar.Month{}, PlainCalendarOptions()); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestCalendarLegend(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Calendar(marchWith(map[int]string{1: "cherry", 2: "cherry", 3: "orange"}), PlainCalendarOptions())

	out := buf.String()
	if !strings.Contains(out, "🍒 Passion / Tension x2") {
		t.Fatalf("missing cherry legend:\n%s", out)
	}
	if !strings.Contains(out, "🍊 Energy / Optimism x1") {
		t.Fatalf("missing orange legend:\n%s", out)
	}

	buf.Reset()
	pp.Calendar(marchWith(nil), PlainCalendarOptions())
	if !strings.Contains(buf.String(), "no moods recorded this month") {
		t.Fatalf("expected empty legend:\n%s", buf.String())
	}
}

func TestEntry(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	e, _ := mood.New("2025-03-15", "grape")
	pp.Entry(e)
	if got := buf.String(); got != "2025-03-15  🍇 grape  Peace / Harmony\n" {
		t.Fatalf("unexpected entry line %q", got)
	}

	buf.Reset()
	pp.Empty("2025-03-16")
	if got := buf.String(); got != "2025-03-16  no mood recorded\n" {
		t.Fatalf("unexpected empty line %q", got)
	}
}

func TestAbout(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Width: 30}

	m, _ := mood.Lookup("grape")
	pp.About(m)
	out := buf.String()
	if !strings.HasPrefix(out, "You are in the moment.") {
		t.Fatalf("unexpected about text %q", out)
	}
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		if len(l) > 30 {
			t.Fatalf("line longer than 30: %q", l)
		}
	}

	buf.Reset()
	pp.About(mood.Mood{ID: "banana"})
	if buf.Len() != 0 {
		t.Fatalf("expected nothing for a mood without text, got %q", buf.String())
	}
}

func TestTipWraps(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, Width: 20}
	pp.Tip("Take a slow walk and notice five things you have never seen before.")
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if len(l) > 20 {
			t.Fatalf("line longer than 20: %q", l)
		}
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	counts := make([]app.MoodCount, 0)
	for _, m := range mood.Catalog() {
		c := app.MoodCount{Mood: m}
		if m.ID == "grape" {
			c.Count = 3
		}
		counts = append(counts, c)
	}
	res := app.ReportResult{
		Since:  time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Until:  time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC),
		Counts: counts,
		Total:  3,
	}
	pp.Report(res, "4w")

	out := buf.String()
	if !strings.Contains(out, "Last 4w (2025-03-01 to 2025-03-28) - 3 moods") {
		t.Fatalf("unexpected title:\n%s", out)
	}
	if !strings.Contains(out, "Mostly 🍇 Peace / Harmony") {
		t.Fatalf("missing dominant mood:\n%s", out)
	}
}
