package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/commands/options"
	"tableflip.dev/moodbubbles/pkg/printers"
	"tableflip.dev/moodbubbles/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "month",
		Aliases: []string{"calendar", "cal"},
		Short:   "Show a month as a calendar of fruits.",
		Example: `
mood month
mood month --month 2025-02
mood month --offset -1
mood month --follow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			now := time.Now()
			start, err := mo.GetMonth(now)
			if err != nil {
				return out.HandleError(err)
			}
			env, err := loadJournal()
			if err != nil {
				return out.HandleError(err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := month.Month{
				Service: env.Service,
				Start:   start,
				Today:   now,
				JSON:    out.JSON,
				Styled:  !out.JSON && printers.StyledOutput(),
				Follow:  mo.Follow,
				Watcher: env.Disk,
				Log:     env.Log,
			}
			err = s.Do(ctx)
			return out.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
