// Package catalog prints the moods that can be recorded.
package catalog

import (
	"context"

	"tableflip.dev/moodbubbles/pkg/mood"
	"tableflip.dev/moodbubbles/pkg/printers"
)

type Catalog struct {
	JSON    bool
	Printer *printers.PrettyPrint
}

type moodJSON struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	About       string `json:"about"`
}

func (c *Catalog) Do(_ context.Context) error {
	pp := c.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	moods := mood.Catalog()
	if c.JSON {
		out := make([]moodJSON, 0, len(moods))
		for _, m := range moods {
			out = append(out, moodJSON{ID: m.ID, Icon: m.Icon, Title: m.Title, Description: m.MoodDescription, About: m.LongDescription})
		}
		return pp.JSON(out)
	}
	pp.NewLine()
	pp.Catalog(moods)
	return nil
}
