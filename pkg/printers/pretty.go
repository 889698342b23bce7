package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/mood"
)

const defaultWidth = 80

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Width is the wrap width for long text; 80 when zero.
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return defaultWidth
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " mood")
	default:
		_, _ = c.Fprintln(pp.out(), " moods")
	}
}

// Entry prints one recorded day.
func (pp *PrettyPrint) Entry(e mood.Entry) {
	d := color.New(color.FgHiYellow, color.Faint)
	b := color.New(color.Bold)

	icon := "?"
	if m, ok := e.Mood(); ok {
		icon = m.Icon
	}
	_, _ = d.Fprintf(pp.out(), "%s  ", e.Date)
	_, _ = fmt.Fprintf(pp.out(), "%s ", icon)
	_, _ = b.Fprint(pp.out(), e.MoodID)
	_, _ = fmt.Fprintf(pp.out(), "  %s\n", e.Emotion)
}

// Empty prints the placeholder for a day without a mood.
func (pp *PrettyPrint) Empty(date string) {
	d := color.New(color.FgHiYellow, color.Faint)
	f := color.New(color.Faint, color.Italic)
	_, _ = d.Fprintf(pp.out(), "%s  ", date)
	_, _ = f.Fprintln(pp.out(), "no mood recorded")
}

func (pp *PrettyPrint) Tip(tip string) {
	i := color.New(color.Italic)
	_, _ = i.Fprintln(pp.out(), wordwrap.String(tip, pp.width()))
}

// About prints the long description of m, wrapped to the print width.
func (pp *PrettyPrint) About(m mood.Mood) {
	if m.LongDescription == "" {
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Fprintln(pp.out(), wordwrap.String(m.LongDescription, pp.width()))
}

// Catalog prints the selectable moods with their descriptions.
func (pp *PrettyPrint) Catalog(moods []mood.Mood) {
	bold := color.New(color.Bold)

	descWidth := pp.width() - 40
	if descWidth < 20 {
		descWidth = 20
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Fruit"), bold.Sprint("Mood"), bold.Sprint("About"))
	for _, m := range moods {
		about := wordwrap.String(m.MoodDescription, descWidth)
		lines := strings.Split(about, "\n")
		tbl.AddRow(m.Icon, m.ID, m.Title, lines[0])
		for _, l := range lines[1:] {
			tbl.AddRow("", "", "", l)
		}
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Report prints the mood counts of a report window as a bar table.
func (pp *PrettyPrint) Report(res app.ReportResult, label string) {
	since := res.Since.Format(mood.LayoutISO)
	until := res.Until.Format(mood.LayoutISO)
	pp.TitleWithCount(fmt.Sprintf("Last %s (%s to %s)", label, since, until), res.Total)

	if res.Total == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range res.Counts {
		tbl.AddRow(c.Mood.Icon, c.Mood.ID, c.Count, pp.bar(res.Share(c)), fmt.Sprintf("%3.0f%%", 100*res.Share(c)))
	}
	if res.Unknown > 0 {
		tbl.AddRow("?", strings.ToLower(mood.UnknownTitle), res.Unknown, "", "")
	}
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	if dom, ok := res.Dominant(); ok {
		b := color.New(color.Bold)
		_, _ = fmt.Fprint(pp.out(), "\nMostly ")
		_, _ = b.Fprintf(pp.out(), "%s %s", dom.Icon, dom.Title)
		_, _ = fmt.Fprintln(pp.out(), "")
	}
	pp.NewLine()
}

const barWidth = 20

func (pp *PrettyPrint) bar(share float64) string {
	n := int(share*barWidth + 0.5)
	return strings.Repeat("█", n) + color.New(color.Faint).Sprint(strings.Repeat("░", barWidth-n))
}
