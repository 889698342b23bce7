package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/commands/options"
	"tableflip.dev/moodbubbles/pkg/runner/catalog"
)

func addCatalog(topLevel *cobra.Command) {
	out := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"fruits", "key"},
		Short:   "List the fruits and the moods they stand for.",
		Example: `
mood catalog
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c := catalog.Catalog{JSON: out.JSON}
			err := c.Do(context.Background())
			return out.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, out)
	topLevel.AddCommand(cmd)
}
