package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/commands/options"
	"tableflip.dev/moodbubbles/pkg/mood"
	"tableflip.dev/moodbubbles/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "set [fruit]",
		Aliases: []string{"add"},
		Short:   "Record the mood of a day.",
		Long: options.Wrap80("Record the mood of a day by picking a fruit: " +
			strings.Join(mood.IDs(), ", ") + ". Without a fruit an interactive picker is shown. " +
			"Setting a day again replaces its mood."),
		Example: `
mood set grape
mood set 🍉 --on yesterday
mood set pine --on 2025-03-01
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: mood.IDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			day, err := on.GetOn(time.Now())
			if err != nil {
				return out.HandleError(err)
			}
			fruit := ""
			if len(args) == 1 {
				fruit = args[0]
			} else if fruit, err = pickFruit(); err != nil {
				return out.HandleError(err)
			}

			env, err := loadJournal()
			if err != nil {
				return out.HandleError(err)
			}
			s := set.Set{
				Service: env.Service,
				On:      day,
				Fruit:   fruit,
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
