// Package mood holds the fruit mood catalog and the per-day mood entry.
package mood

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMood is returned when a mood id is not part of the catalog.
var ErrUnknownMood = errors.New("mood: unknown mood")

// UnknownTitle is the label recorded for ids missing from the catalog.
const UnknownTitle = "Unknown"

// Mood is one selectable fruit.
type Mood struct {
	ID              string
	Title           string
	MoodDescription string
	LongDescription string
	Icon            string
	Asset           string
}

func (m Mood) String() string {
	return m.Icon
}

var catalog = []Mood{
	{
		ID:              "cherry",
		Title:           "Passion / Tension",
		MoodDescription: "Strong emotions, internal charge. It can be both love, drive, inspiration, and nervous excitement or irritation.",
		LongDescription: "Your day is busy. You are passionate, you feel everything to the maximum. Sometimes it's good, sometimes you should take a deep breath.",
		Icon:            "🍒",
		Asset:           "cherry.png",
	},
	{
		ID:              "watermelon",
		Title:           "Joy / Holiday",
		MoodDescription: "Carefree, lightness, a feeling of summer and pleasure.",
		LongDescription: "You are like a watermelon in the heat, you refresh everything around you. Your energy is a holiday that you want to share with others.",
		Icon:            "🍉",
		Asset:           "watermelon.png",
	},
	{
		ID:              "orange",
		Title:           "Energy / Optimism",
		MoodDescription: "Activity, desire to do something, inspiration. You are charged with movement, change, laughter.",
		LongDescription: "The sun is inside you. You are charged with movement, change, laughter. This day is your chance to use your energy correctly.",
		Icon:            "🍊",
		Asset:           "orange.png",
	},
	{
		ID:              "pineapple",
		Title:           "Creativity / Unusualness",
		MoodDescription: "You are in an unconventional state: either joking, or dreaming, or looking for the strange in the ordinary.",
		LongDescription: "You are like a pineapple among apples. Today you want something different, unconventional. Embrace your uniqueness.",
		Icon:            "🍍",
		Asset:           "pineapple.png",
	},
	{
		ID:              "grape",
		Title:           "Peace / Harmony",
		MoodDescription: "Balance, inner peace, pleasure from the simple.",
		LongDescription: "You are in the moment. No rush, no drama. Just a day when it's good to be yourself.",
		Icon:            "🍇",
		Asset:           "grape.png",
	},
}

// Catalog returns the moods in display order. The returned slice is a copy.
func Catalog() []Mood {
	out := make([]Mood, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns the catalog ids in display order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for _, m := range catalog {
		ids = append(ids, m.ID)
	}
	return ids
}

// Lookup finds the mood with the given id.
func Lookup(id string) (Mood, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Mood{}, false
}

// Parse resolves user input to a mood. It accepts the id, the icon, or a
// case-insensitive prefix of the id.
func Parse(raw string) (Mood, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Mood{}, fmt.Errorf("%w: empty", ErrUnknownMood)
	}
	var match *Mood
	for i := range catalog {
		m := catalog[i]
		if m.ID == v || m.Icon == v {
			return m, nil
		}
		if strings.HasPrefix(m.ID, v) {
			if match != nil {
				return Mood{}, fmt.Errorf("%w: %q is ambiguous", ErrUnknownMood, raw)
			}
			match = &catalog[i]
		}
	}
	if match == nil {
		return Mood{}, fmt.Errorf("%w: %q", ErrUnknownMood, raw)
	}
	return *match, nil
}

// TitleFor returns the catalog title for id, or UnknownTitle.
func TitleFor(id string) string {
	if m, ok := Lookup(id); ok {
		return m.Title
	}
	return UnknownTitle
}
