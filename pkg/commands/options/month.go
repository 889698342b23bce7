package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodbubbles/pkg/calendar"
	"tableflip.dev/moodbubbles/pkg/timeutil"
)

// MonthOptions selects the month shown by the calendar.
type MonthOptions struct {
	MonthString string
	Offset      int
	Follow      bool
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Specify a month, example: --month=2025-03, --month="March 2025" or --month=last.`)
	cmd.Flags().IntVar(&o.Offset, "offset", 0,
		"Move the selected month by this many months.")
	cmd.Flags().BoolVarP(&o.Follow, "follow", "f", false,
		Wrap80("Keep running and redraw the month whenever the journal changes on disk."))
}

// GetMonth returns the first day of the selected month.
func (o *MonthOptions) GetMonth(now time.Time) (time.Time, error) {
	start, err := timeutil.ParseMonth(o.MonthString, now)
	if err != nil {
		return time.Time{}, err
	}
	return calendar.AdvanceMonth(start, o.Offset), nil
}
