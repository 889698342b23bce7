package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/commands/options"
	"tableflip.dev/moodbubbles/pkg/runner/clearall"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every recorded mood.",
		Example: `
mood clear
mood clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			env, err := loadJournal()
			if err != nil {
				return err
			}
			c := clearall.Clear{
				Service: env.Service,
				Yes:     co.Yes,
			}
			return c.Do(context.Background())
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
