package set

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/printers"
)

// Set records the mood for one day.
type Set struct {
	Service *app.Service
	On      time.Time
	Fruit   string
	JSON    bool
	Printer *printers.PrettyPrint
}

func (s *Set) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not set mood, no journal")
	}
	pp := s.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	e, err := s.Service.Set(ctx, s.On, s.Fruit)
	if err != nil {
		return err
	}
	if s.JSON {
		return pp.JSON(printers.Day(e.Date, e, true))
	}
	pp.Entry(e)
	if m, ok := e.Mood(); ok {
		pp.About(m)
	}
	return nil
}
