package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the journal and where it is stored.",
		Example: `
mood info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			env, err := loadJournal()
			if err != nil {
				return err
			}
			s := info.Info{
				Config:  env.Config,
				Records: env.Service.Records,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
