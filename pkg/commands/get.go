package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/commands/options"
	"tableflip.dev/moodbubbles/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the mood of a day.",
		Example: `
mood get
mood get --on 3/1
mood get --on yesterday --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			day, err := on.GetOn(time.Now())
			if err != nil {
				return out.HandleError(err)
			}
			env, err := loadJournal()
			if err != nil {
				return out.HandleError(err)
			}
			s := get.Get{
				Service: env.Service,
				On:      day,
				JSON:    out.JSON,
			}
			err = s.Do(context.Background())
			return out.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
