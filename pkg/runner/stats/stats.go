package stats

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/mood"
	"tableflip.dev/moodbubbles/pkg/printers"
)

// Stats counts the moods recorded over the last Days days, today included.
type Stats struct {
	Service *app.Service
	Until   time.Time
	Days    int
	Label   string
	JSON    bool
	Printer *printers.PrettyPrint
}

type countJSON struct {
	Fruit string `json:"fruit"`
	Count int    `json:"count"`
}

type statsJSON struct {
	Since   string      `json:"since"`
	Until   string      `json:"until"`
	Total   int         `json:"total"`
	Unknown int         `json:"unknown,omitempty"`
	Counts  []countJSON `json:"counts"`
}

func (s *Stats) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not report, no journal")
	}
	if s.Days < 1 {
		return errors.New("report window must be at least one day")
	}
	pp := s.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	since := s.Until.AddDate(0, 0, 1-s.Days)
	res, err := s.Service.Report(ctx, since, s.Until)
	if err != nil {
		return err
	}

	if s.JSON {
		out := statsJSON{
			Since:   res.Since.Format(mood.LayoutISO),
			Until:   res.Until.Format(mood.LayoutISO),
			Total:   res.Total,
			Unknown: res.Unknown,
		}
		for _, c := range res.Counts {
			out.Counts = append(out.Counts, countJSON{Fruit: c.Mood.ID, Count: c.Count})
		}
		return pp.JSON(out)
	}

	pp.NewLine()
	pp.Report(res, s.Label)
	return nil
}
