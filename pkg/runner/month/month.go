// Package month draws the calendar view of one month and can keep it current
// while other processes write to the journal.
package month

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/printers"
	"tableflip.dev/moodbubbles/pkg/store"
)

type Month struct {
	Service *app.Service
	Start   time.Time
	// Today is underlined when it falls in the month.
	Today time.Time
	JSON  bool
	// Styled selects the color grid over the plain one.
	Styled bool
	// Follow redraws on every change reported by Watcher until ctx is done.
	Follow  bool
	Watcher store.Watcher
	Log     logrus.FieldLogger
	Printer *printers.PrettyPrint
}

func (m *Month) Do(ctx context.Context) error {
	if m.Service == nil || m.Service.Records == nil {
		return errors.New("can not show month, no journal")
	}
	if m.Follow && m.Watcher == nil {
		return errors.New("can not follow, the journal can not be watched")
	}
	if m.Printer == nil {
		m.Printer = &printers.PrettyPrint{}
	}
	if m.Log == nil {
		m.Log = logrus.StandardLogger()
	}

	if err := m.render(ctx); err != nil {
		return err
	}
	if !m.Follow {
		return nil
	}

	events, err := m.Watcher.Watch(ctx)
	if err != nil {
		return err
	}
	month := m.Start.Format("2006-01")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			m.Service.Records.Invalidate()
			if ev.Type == store.EventDateChanged && len(ev.Date) >= 7 && ev.Date[:7] != month {
				m.Log.WithField("date", ev.Date).Debug("change outside the shown month")
				continue
			}
			m.Log.WithField("date", ev.Date).Debug("journal changed, redrawing")
			if err := m.render(ctx); err != nil {
				return err
			}
		}
	}
}

func (m *Month) render(ctx context.Context) error {
	cal, err := m.Service.Calendar(ctx, m.Start)
	if err != nil {
		return err
	}
	if m.JSON {
		return m.Printer.JSON(printers.MonthOf(cal))
	}

	opts := printers.PlainCalendarOptions()
	if m.Styled {
		opts = printers.DefaultCalendarOptions()
	}
	opts.Today = m.Today
	m.Printer.NewLine()
	m.Printer.Calendar(cal, opts)
	return nil
}
