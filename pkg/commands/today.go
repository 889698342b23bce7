package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/commands/options"
	"tableflip.dev/moodbubbles/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's mood and a tip for it.",
		Example: `
mood today
mood today --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			env, err := loadJournal()
			if err != nil {
				return out.HandleError(err)
			}
			s := today.Today{
				Service: env.Service,
				JSON:    out.JSON,
			}
			err = s.Do(context.Background())
			return out.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
