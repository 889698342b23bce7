package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/moodbubbles/pkg/journal"
	"tableflip.dev/moodbubbles/pkg/mood"
	"tableflip.dev/moodbubbles/pkg/store"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := New()
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	return cmd.Execute()
}

func journalDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("MOOD_PATH", dir)
	t.Setenv("MOOD_CONFIG_PATH", dir)
	return dir
}

func TestCommandsRegistered(t *testing.T) {
	cmd := New()
	want := []string{"set", "get", "today", "month", "browse", "stats", "catalog", "clear", "info", "version", "upgrade", "completion"}
	for _, name := range want {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing command %q", name)
		}
	}
}

func TestSetGetClear(t *testing.T) {
	dir := journalDir(t)

	if err := run(t, "set", "grape", "--on", "2025-03-15"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := run(t, "get", "--on", "2025-03-15"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := run(t, "month", "--month", "2025-03", "--json"); err != nil {
		t.Fatalf("month: %v", err)
	}

	disk, err := store.Load(store.StaticConfig{Path: dir})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ctx := context.Background()
	if v, err := disk.Get(ctx, journal.Key("2025-03-15")); err != nil || v != `{"fruit":"grape","emotion":"Peace / Harmony"}` {
		t.Fatalf("unexpected record %q, %v", v, err)
	}

	if err := run(t, "clear", "--yes"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := disk.Get(ctx, journal.Key("2025-03-15")); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected record removed, got %v", err)
	}
}

func TestSetRejectsUnknownFruit(t *testing.T) {
	journalDir(t)
	if err := run(t, "set", "kiwi"); err == nil {
		t.Fatalf("expected error for unknown fruit")
	}
}

func TestBadDateFlag(t *testing.T) {
	journalDir(t)
	if err := run(t, "get", "--on", "2025-02-30"); err == nil {
		t.Fatalf("expected error for impossible date")
	}
}

func TestOutputFlagsAreNotShared(t *testing.T) {
	first := New()
	today, _, err := first.Find([]string{"today"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if err := today.Flags().Set("json", "true"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	second := New()
	other, _, _ := second.Find([]string{"today"})
	if v, _ := other.Flags().GetBool("json"); v {
		t.Fatalf("new command tree should start without --json")
	}
	if v, _ := today.Flags().GetBool("json"); !v {
		t.Fatalf("building another tree must not reset --json on the first")
	}
}

func TestCompletionOffersFruits(t *testing.T) {
	root := New()
	comp, _, err := root.Find([]string{"completion"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !strings.Contains(comp.Long, "mood set") {
		t.Fatalf("completion help should name the fruit argument of mood set, got %q", comp.Long)
	}
	set, _, _ := root.Find([]string{"set"})
	for _, id := range mood.IDs() {
		found := false
		for _, v := range set.ValidArgs {
			found = found || v == id
		}
		if !found {
			t.Fatalf("expected %q among completions %v", id, set.ValidArgs)
		}
	}
}
