package printers

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	fcolor "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/moodbubbles/pkg/calendar"
	"tableflip.dev/moodbubbles/pkg/mood"
)

const weekHeader = "Su Mo Tu We Th Fr Sa"

// CalendarOptions controls the styling of a rendered month.
type CalendarOptions struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	MoodStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	// MoodColors shades mood days with the fruit's color.
	MoodColors bool
	// Today is marked when it falls inside the rendered month.
	Today time.Time
	// Selected is the day under the cursor, 0 for none.
	Selected int
}

// PlainCalendarOptions renders without any escape sequences.
func PlainCalendarOptions() CalendarOptions {
	return CalendarOptions{
		TitleStyle:    lipgloss.NewStyle(),
		HeaderStyle:   lipgloss.NewStyle(),
		EmptyStyle:    lipgloss.NewStyle(),
		MoodStyle:     lipgloss.NewStyle(),
		TodayStyle:    lipgloss.NewStyle(),
		SelectedStyle: lipgloss.NewStyle(),
	}
}

// DefaultCalendarOptions styles the grid for a color terminal.
func DefaultCalendarOptions() CalendarOptions {
	return CalendarOptions{
		TitleStyle:    lipgloss.NewStyle().Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Faint(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		MoodStyle:     lipgloss.NewStyle(),
		TodayStyle:    lipgloss.NewStyle().Underline(true).Bold(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
		MoodColors:    true,
	}
}

// StyledOutput reports whether stdout should receive styled output.
func StyledOutput() bool {
	if termenv.EnvNoColor() {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RenderMonth produces the grid for m: a centered title, the weekday header,
// then one row per week starting on Sunday. Days with a mood show the mood
// icon, other days their number.
func RenderMonth(m calendar.Month, opts CalendarOptions) string {
	if m.Start.IsZero() {
		return ""
	}
	width := lipgloss.Width(weekHeader)
	title := m.Start.Format("January 2006")

	lines := []string{
		opts.TitleStyle.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, title)),
		opts.HeaderStyle.Render(weekHeader),
	}

	total := len(m.Days)
	rows := (m.Offset + total + 6) / 7
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			idx := row*7 + col - m.Offset
			if idx < 0 || idx >= total {
				cells = append(cells, "  ")
				continue
			}
			cells = append(cells, renderDay(m.Days[idx], m.Start, opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return strings.Join(lines, "\n")
}

func renderDay(d calendar.DayState, monthStart time.Time, opts CalendarOptions) string {
	glyph := fmt.Sprintf("%2d", d.Day)
	style := opts.EmptyStyle
	if d.HasMood() {
		style = opts.MoodStyle
		glyph = "? "
		if m, ok := d.Entry.Mood(); ok {
			glyph = m.Icon
			if c, ok := moodColor(m.ID); ok && opts.MoodColors {
				style = style.Background(c)
			}
		}
	}
	if opts.Selected == d.Day {
		style = style.Inherit(opts.SelectedStyle)
	}
	if isToday(opts.Today, monthStart, d.Day) {
		style = style.Inherit(opts.TodayStyle)
	}
	return style.Render(glyph)
}

func isToday(today, monthStart time.Time, day int) bool {
	if today.IsZero() {
		return false
	}
	return today.Year() == monthStart.Year() && today.Month() == monthStart.Month() && today.Day() == day
}

var moodHex = map[string]string{
	"cherry":     "#B5172B",
	"watermelon": "#E8577A",
	"orange":     "#F28C28",
	"pineapple":  "#E8C547",
	"grape":      "#6A3FA0",
}

// moodColor is a muted version of the fruit's color, so the icon stays
// readable on top of it.
func moodColor(id string) (color.Color, bool) {
	hex, ok := moodHex[id]
	if !ok {
		return nil, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, false
	}
	base, _ := colorful.Hex("#1E1E1E")
	return c.BlendLab(base, 0.55).Clamped(), true
}

// Calendar prints the month grid followed by a legend of the moods in it.
func (pp *PrettyPrint) Calendar(m calendar.Month, opts CalendarOptions) {
	_, _ = fmt.Fprintln(pp.out(), RenderMonth(m, opts))
	pp.NewLine()

	counts := make(map[string]int)
	for _, d := range m.Days {
		if d.HasMood() {
			counts[d.Entry.MoodID]++
		}
	}
	if len(counts) == 0 {
		f := fcolor.New(fcolor.Faint, fcolor.Italic)
		_, _ = f.Fprintln(pp.out(), "no moods recorded this month")
		return
	}

	c := fcolor.New(fcolor.Faint)
	for _, md := range mood.Catalog() {
		n, ok := counts[md.ID]
		if !ok {
			continue
		}
		_, _ = fmt.Fprintf(pp.out(), "%s %s", md.Icon, md.Title)
		_, _ = c.Fprintf(pp.out(), " x%d\n", n)
		delete(counts, md.ID)
	}
	unknown := 0
	for _, n := range counts {
		unknown += n
	}
	if unknown > 0 {
		_, _ = fmt.Fprintf(pp.out(), "? %s", mood.UnknownTitle)
		_, _ = c.Fprintf(pp.out(), " x%d\n", unknown)
	}
}
