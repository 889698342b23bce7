package mood

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// LayoutISO is the date layout used for entry keys.
const LayoutISO = "2006-01-02"

// ErrInvalidDate is returned for dates not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("mood: invalid date")

// Entry is the mood recorded for a single date. Emotion is captured when the
// entry is written so older entries keep their label if the catalog changes.
type Entry struct {
	Date    string `json:"-"`
	MoodID  string `json:"fruit"`
	Emotion string `json:"emotion"`
}

// New builds an entry for date, resolving the label from the catalog.
func New(date, moodID string) (Entry, error) {
	d, err := NormalizeDate(date)
	if err != nil {
		return Entry{}, err
	}
	m, ok := Lookup(moodID)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownMood, moodID)
	}
	return Entry{Date: d, MoodID: m.ID, Emotion: m.Title}, nil
}

// Mood returns the catalog mood for the entry, if it is still known.
func (e Entry) Mood() (Mood, bool) {
	return Lookup(e.MoodID)
}

// Time parses the entry date in loc.
func (e Entry) Time(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(LayoutISO, e.Date, loc)
}

func (e Entry) String() string {
	icon := "?"
	if m, ok := e.Mood(); ok {
		icon = m.Icon
	}
	return fmt.Sprintf("%s %s %s", e.Date, icon, e.Emotion)
}

// Marshal encodes the stored value, e.g. {"fruit":"cherry","emotion":"Passion / Tension"}.
func (e Entry) Marshal() (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Unmarshal decodes a stored value for date. Values written by older builds
// held only the bare mood id; those are accepted and labelled from the catalog.
func Unmarshal(date, value string) (Entry, error) {
	e := Entry{}
	raw := strings.TrimSpace(value)
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		if _, ok := Lookup(raw); !ok {
			return Entry{}, err
		}
		e = Entry{MoodID: raw}
	}
	if e.MoodID == "" {
		return Entry{}, fmt.Errorf("mood: entry for %s has no fruit", date)
	}
	if e.Emotion == "" {
		e.Emotion = TitleFor(e.MoodID)
	}
	e.Date = date
	return e, nil
}

// DateKey formats t as YYYY-MM-DD in its own location.
func DateKey(t time.Time) string {
	return t.Format(LayoutISO)
}

// NormalizeDate validates a YYYY-MM-DD date and returns it in canonical form.
func NormalizeDate(date string) (string, error) {
	t, err := time.Parse(LayoutISO, strings.TrimSpace(date))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t.Format(LayoutISO), nil
}
