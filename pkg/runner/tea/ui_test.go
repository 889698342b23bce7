package teaui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/moodbubbles/pkg/journal"
	"tableflip.dev/moodbubbles/pkg/runner/internal/runnertest"
)

var (
	keyLeft  = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func march() time.Time {
	return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
}

func assertModel(t *testing.T, tm tea.Model) Model {
	t.Helper()
	m, ok := tm.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", tm)
	}
	return m
}

// drain runs cmds and feeds their messages back until none are left. It
// reports whether the model asked to quit.
func drain(t *testing.T, m Model, cmds ...tea.Cmd) (Model, bool) {
	t.Helper()
	queue := append([]tea.Cmd(nil), cmds...)
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		switch msg := cmd().(type) {
		case nil:
		case tea.QuitMsg:
			return m, true
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			next, more := m.Update(msg)
			m = assertModel(t, next)
			queue = append(queue, more)
		}
	}
	return m, false
}

func press(t *testing.T, m Model, keys ...tea.KeyPressMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(k)
		m, _ = drain(t, assertModel(t, next), cmd)
	}
	return m
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func open(t *testing.T, seed map[string]string) Model {
	t.Helper()
	svc, _, _, _ := runnertest.Service(seed)
	m := New(context.Background(), svc, march(), runnertest.Now)
	m, _ = drain(t, m, m.Init())
	return m
}

func TestOpensOnToday(t *testing.T) {
	m := open(t, map[string]string{
		journal.Key("2025-03-15"): `{"fruit":"grape","emotion":"Peace / Harmony"}`,
	})

	if m.day != 15 {
		t.Fatalf("expected cursor on the 15th, got %d", m.day)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "March 2025") {
		t.Fatalf("expected month title in view:\n%s", view)
	}
	if !strings.Contains(view, "2025-03-15  🍇 grape  Peace / Harmony") {
		t.Fatalf("expected selected day line in view:\n%s", view)
	}
}

func TestMonthNavigation(t *testing.T) {
	m := open(t, nil)

	m = press(t, m, runeKey(']'))
	if !m.start.Equal(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected April, got %s", m.start.Format("2006-01"))
	}
	if !strings.Contains(stripANSI(m.View()), "April 2025") {
		t.Fatalf("expected April in view:\n%s", stripANSI(m.View()))
	}

	m = press(t, m, runeKey('['), runeKey('['))
	if !m.start.Equal(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected February, got %s", m.start.Format("2006-01"))
	}
	if m.day != 15 {
		t.Fatalf("expected the day to be kept, got %d", m.day)
	}
}

func TestMonthNavigationClampsDay(t *testing.T) {
	svc, _, _, _ := runnertest.Service(nil)
	today := time.Date(2025, time.January, 31, 9, 0, 0, 0, time.UTC)
	m := New(context.Background(), svc, today, today)
	m, _ = drain(t, m, m.Init())

	m = press(t, m, runeKey(']'))
	if m.day != 28 {
		t.Fatalf("expected Feb 28, got day %d", m.day)
	}

	m = press(t, m, runeKey('['), runeKey('['))
	if !m.start.Equal(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected rollover into December 2024, got %s", m.start.Format("2006-01"))
	}
}

func TestDayCursorCrossesMonths(t *testing.T) {
	m := open(t, nil)

	m = press(t, m, keyDown, keyDown, keyDown)
	if !m.start.Equal(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)) || m.day != 5 {
		t.Fatalf("expected April 5, got %s day %d", m.start.Format("2006-01"), m.day)
	}

	m = press(t, m, keyLeft, keyLeft, keyLeft, keyLeft, keyLeft)
	if !m.start.Equal(march()) || m.day != 31 {
		t.Fatalf("expected March 31, got %s day %d", m.start.Format("2006-01"), m.day)
	}

	m = press(t, m, runeKey('t'))
	if !m.start.Equal(march()) || m.day != 15 {
		t.Fatalf("expected back on today, got %s day %d", m.start.Format("2006-01"), m.day)
	}
}

func TestPickFruitSavesMood(t *testing.T) {
	svc, store, _, _ := runnertest.Service(nil)
	m := New(context.Background(), svc, march(), runnertest.Now)
	m, _ = drain(t, m, m.Init())

	m = press(t, m, keyEnter)
	if m.mode != modeFruitSelect {
		t.Fatalf("expected picker to open")
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "Your day is busy.") {
		t.Fatalf("expected the long description of the highlighted fruit:\n%s", view)
	}

	m = press(t, m, keyDown, keyDown, keyEnter)
	if m.mode != modeCalendar {
		t.Fatalf("expected picker to close")
	}
	if m.status != "Saved 🍊 orange for 2025-03-15" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if v, err := store.Get(context.Background(), journal.Key("2025-03-15")); err != nil || !strings.Contains(v, "orange") {
		t.Fatalf("expected orange to be stored, got %q %v", v, err)
	}
	if !m.selected.HasMood() || m.selected.Entry.MoodID != "orange" {
		t.Fatalf("expected the selection to show orange, got %+v", m.selected)
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "2025-03-15  🍊 orange  Energy / Optimism") {
		t.Fatalf("expected the new mood in view:\n%s", view)
	}
}

func TestPickerStartsOnCurrentFruit(t *testing.T) {
	m := open(t, map[string]string{
		journal.Key("2025-03-15"): `{"fruit":"grape","emotion":"Peace / Harmony"}`,
	})
	m = press(t, m, keyEnter)
	if got := m.fruits.Index(); got != 4 {
		t.Fatalf("expected grape to be highlighted, got index %d", got)
	}
}

func TestPickerCancel(t *testing.T) {
	svc, store, _, _ := runnertest.Service(nil)
	m := New(context.Background(), svc, march(), runnertest.Now)
	m, _ = drain(t, m, m.Init())

	m = press(t, m, keyEnter, keyDown, keyEsc)
	if m.mode != modeCalendar || m.status != "Cancelled" {
		t.Fatalf("expected cancelled picker, got mode %d status %q", m.mode, m.status)
	}
	if store.Len() != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestQuit(t *testing.T) {
	m := open(t, nil)
	next, cmd := m.Update(runeKey('q'))
	if _, quit := drain(t, assertModel(t, next), cmd); !quit {
		t.Fatalf("expected q to quit")
	}
}

func TestHelpToggle(t *testing.T) {
	m := open(t, nil)
	m = press(t, m, runeKey('?'))
	if !strings.Contains(stripANSI(m.View()), "Keys: h/l") {
		t.Fatalf("expected help in view:\n%s", stripANSI(m.View()))
	}
	m = press(t, m, runeKey('?'))
	if m.mode != modeCalendar {
		t.Fatalf("expected help to close")
	}
}

func TestNoService(t *testing.T) {
	m := New(context.Background(), nil, march(), runnertest.Now)
	m, _ = drain(t, m, m.Init())
	if !strings.HasPrefix(m.status, "ERR: ") {
		t.Fatalf("expected an error status, got %q", m.status)
	}
}
