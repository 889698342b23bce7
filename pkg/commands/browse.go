package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/commands/options"
	teaui "tableflip.dev/moodbubbles/pkg/runner/tea"
)

func addBrowse(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ui"},
		Short:   "Browse the calendar month by month and pick a fruit for any day.",
		Example: `
mood browse
mood browse --month 2025-02
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			now := time.Now()
			start, err := mo.GetMonth(now)
			if err != nil {
				return err
			}
			env, err := loadJournal()
			if err != nil {
				return err
			}

			// Log lines would tear the full screen UI, hold them until it exits.
			var logs bytes.Buffer
			env.Log.SetOutput(&logs)
			defer func() { _, _ = io.Copy(os.Stderr, &logs) }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return teaui.Run(ctx, env.Service, start, now)
		},
	}

	cmd.Flags().StringVarP(&mo.MonthString, "month", "m", "",
		`Month to open, example: --month=2025-03 or --month=last.`)
	cmd.Flags().IntVar(&mo.Offset, "offset", 0,
		"Move the opening month by this many months.")
	topLevel.AddCommand(cmd)
}
