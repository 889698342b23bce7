package store

import (
	"context"
	"testing"
	"time"
)

func TestDiskWatchEmitsDateChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load medium: %v", err)
	}

	// Create the month bucket up front so the write lands in a watched dir.
	if err := p.Set(context.Background(), "mood_2025-03-01", `{"fruit":"grape"}`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Set(context.Background(), "mood_2025-03-15", `{"fruit":"cherry"}`); err != nil {
		t.Fatalf("set: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventDateChanged {
				if evt.Date != "2025-03-15" {
					t.Fatalf("expected date 2025-03-15, got %q", evt.Date)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change event")
		}
	}
}

func TestDateForPath(t *testing.T) {
	tests := map[string]string{
		"/data/mood/2025/03/mood_2025-03-15": "2025-03-15",
		"/data/@MoodsByDate":                 "",
		"/data/mood/2025/03":                 "",
		"mood_2025-13-01":                    "",
	}
	for in, want := range tests {
		if got := dateForPath(in); got != want {
			t.Fatalf("dateForPath(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestThrottleCollapsesInvalidation(t *testing.T) {
	th := newEventThrottle(10 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }

	th.Enqueue(Event{Type: EventDateChanged, Date: "2025-03-15"}, send)
	th.Enqueue(Event{Type: EventInvalidated}, send)
	th.Enqueue(Event{Type: EventDateChanged, Date: "2025-03-16"}, send)

	select {
	case ev := <-got:
		if ev.Type != EventInvalidated {
			t.Fatalf("expected invalidation, got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for flush")
	}
	select {
	case ev := <-got:
		t.Fatalf("unexpected extra event %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
