package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/timeutil"
)

// OnOptions selects the day a command works on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2025-03-15", --on="3/15" or --on=yesterday.`)
}

// GetOn resolves the flag against now; an empty flag is today.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	return timeutil.ParseDate(o.OnString, now)
}
