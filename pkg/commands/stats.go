package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/commands/options"
	"tableflip.dev/moodbubbles/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"report"},
		Short:   "Count the moods of the last few weeks.",
		Long: `Stats counts the recorded moods within a window ending today.

Examples:
  mood stats
  mood stats --last 10d
  mood stats --last 1w3d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			days, label, err := wo.GetWindow()
			if err != nil {
				return out.HandleError(err)
			}
			env, err := loadJournal()
			if err != nil {
				return out.HandleError(err)
			}
			s := stats.Stats{
				Service: env.Service,
				Until:   time.Now(),
				Days:    days,
				Label:   label,
				JSON:    out.JSON,
			}
			err = s.Do(context.Background())
			return out.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
