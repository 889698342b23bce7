package printers

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/moodbubbles/pkg/calendar"
	"tableflip.dev/moodbubbles/pkg/mood"
)

// DayJSON is the JSON shape of one day.
type DayJSON struct {
	Date    string `json:"date"`
	Fruit   string `json:"fruit,omitempty"`
	Emotion string `json:"emotion,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Tip     string `json:"tip,omitempty"`
}

// MonthJSON is the JSON shape of a calendar month.
type MonthJSON struct {
	Month  string    `json:"month"`
	Offset int       `json:"offset"`
	Days   []DayJSON `json:"days"`
}

// Day converts e, which is ignored unless ok, into its JSON shape.
func Day(date string, e mood.Entry, ok bool) DayJSON {
	d := DayJSON{Date: date}
	if !ok {
		return d
	}
	d.Fruit = e.MoodID
	d.Emotion = e.Emotion
	if m, found := e.Mood(); found {
		d.Icon = m.Icon
	}
	return d
}

// MonthOf converts a calendar month into its JSON shape.
func MonthOf(m calendar.Month) MonthJSON {
	out := MonthJSON{
		Month:  m.Start.Format("2006-01"),
		Offset: m.Offset,
		Days:   make([]DayJSON, 0, len(m.Days)),
	}
	for _, d := range m.Days {
		date := m.Start.AddDate(0, 0, d.Day-1).Format(mood.LayoutISO)
		out.Days = append(out.Days, Day(date, d.Entry, d.HasMood()))
	}
	return out
}

// JSON writes v as a single line of JSON.
func (pp *PrettyPrint) JSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}
