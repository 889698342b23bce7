package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/timeutil"
)

// WindowOptions selects how far back a report looks.
type WindowOptions struct {
	Last string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Last, "last", timeutil.DefaultWindow,
		"Time window to include, for example 10d, 2w or 1w3d.")
}

// GetWindow returns the window length in days and its display label.
func (o *WindowOptions) GetWindow() (int, string, error) {
	return timeutil.ParseWindow(o.Last)
}
