package get

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/mood"
	"tableflip.dev/moodbubbles/pkg/printers"
)

// Get shows the mood recorded for one day.
type Get struct {
	Service *app.Service
	On      time.Time
	JSON    bool
	Printer *printers.PrettyPrint
}

func (g *Get) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("can not get, no journal")
	}
	pp := g.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	date := mood.DateKey(g.On)
	e, ok, err := g.Service.Get(ctx, g.On)
	if err != nil {
		return err
	}
	if g.JSON {
		return pp.JSON(printers.Day(date, e, ok))
	}
	if !ok {
		pp.Empty(date)
		return nil
	}
	pp.Entry(e)
	return nil
}
