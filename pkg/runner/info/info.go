package info

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodbubbles/pkg/journal"
	"tableflip.dev/moodbubbles/pkg/store"
)

// Info prints where the journal lives and what it holds.
type Info struct {
	Config  store.Config
	Records *journal.Records
}

func (n *Info) Do(ctx context.Context) error {
	out := color.Output
	bold := color.New(color.Bold)

	if override := os.Getenv("MOOD_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "MOOD_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "MOOD_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Records == nil {
		return fmt.Errorf("failed to open the journal")
	}

	snap, err := n.Records.Reload(ctx)
	if err != nil {
		return err
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Config.path"), n.Config.BasePath())
	tbl.AddRow(bold.Sprint("Config.log-level"), n.Config.LogLevel())
	tbl.AddRow(bold.Sprint("Config.log-format"), n.Config.LogFormat())
	tbl.AddRow(bold.Sprint("Moods"), len(snap))
	if dates := snap.Dates(); len(dates) > 0 {
		tbl.AddRow(bold.Sprint("First"), dates[0])
		tbl.AddRow(bold.Sprint("Last"), dates[len(dates)-1])
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
