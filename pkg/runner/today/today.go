// Package today shows today's mood along with a tip for it.
package today

import (
	"context"
	"errors"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/mood"
	"tableflip.dev/moodbubbles/pkg/printers"
)

type Today struct {
	Service *app.Service
	JSON    bool
	Printer *printers.PrettyPrint
}

func (t *Today) Do(ctx context.Context) error {
	if t.Service == nil {
		return errors.New("can not show today, no journal")
	}
	pp := t.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	res, err := t.Service.Today(ctx)
	if err != nil {
		return err
	}
	date := mood.DateKey(res.Date)
	if t.JSON {
		d := printers.Day(date, res.Entry, res.HasMood)
		d.Tip = res.Tip
		return pp.JSON(d)
	}

	if !res.HasMood {
		pp.Empty(date)
		pp.NewLine()
		pp.Tip("How are you feeling? Pick a fruit with: mood set <fruit>")
		return nil
	}
	pp.Entry(res.Entry)
	pp.NewLine()
	pp.Tip(res.Tip)
	return nil
}
