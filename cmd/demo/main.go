// Command demo fills the configured journal with random moods for the last
// few weeks and prints the current month.
package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/calendar"
	"tableflip.dev/moodbubbles/pkg/journal"
	"tableflip.dev/moodbubbles/pkg/logging"
	"tableflip.dev/moodbubbles/pkg/mood"
	"tableflip.dev/moodbubbles/pkg/printers"
	"tableflip.dev/moodbubbles/pkg/store"
)

func main() {
	days := 28
	skip := 0.2

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fill the journal with random moods.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return seed(context.Background(), days, skip)
		},
	}
	cmd.Flags().IntVar(&days, "days", days, "Number of days to fill, ending today.")
	cmd.Flags().Float64Var(&skip, "skip", skip, "Chance of leaving a day empty.")

	if err := cmd.Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

func seed(ctx context.Context, days int, skip float64) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel(), cfg.LogFormat(), os.Stderr)
	if err != nil {
		return err
	}
	disk, err := store.Load(cfg)
	if err != nil {
		return err
	}
	records := journal.New(disk, journal.WithLogger(logger))

	ids := mood.IDs()
	today := time.Now()
	for i := 0; i < days; i++ {
		if rand.Float64() < skip {
			continue
		}
		date := mood.DateKey(today.AddDate(0, 0, -i))
		if _, err := records.Put(ctx, date, ids[rand.IntN(len(ids))]); err != nil {
			return err
		}
	}

	model := calendar.Model{Source: records}
	pp := &printers.PrettyPrint{}
	opts := printers.PlainCalendarOptions()
	if printers.StyledOutput() {
		opts = printers.DefaultCalendarOptions()
	}
	opts.Today = today
	pp.Calendar(model.Month(ctx, today), opts)
	return nil
}
