// Package teaui is the interactive month browser: move between months, pick
// a day and set its fruit.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/moodbubbles/pkg/app"
	"tableflip.dev/moodbubbles/pkg/calendar"
	"tableflip.dev/moodbubbles/pkg/mood"
	"tableflip.dev/moodbubbles/pkg/printers"
)

type mode int

const (
	modeCalendar mode = iota
	modeFruitSelect
	modeHelp
)

const (
	defaultStatus = "←/→ day, ↑/↓ week, [/] month, t today, enter pick, ? help, q quit"
	helpText      = "Keys: h/l or ←/→ previous/next day, k/j or ↑/↓ previous/next week, [ ] or pgup/pgdown previous/next month, t back to today, enter pick a fruit for the selected day, esc cancel, q quit"
	defaultWidth  = 60
)

var errNoService = errors.New("can not browse, no journal")

// fruit item for the picker list
type fruitItem struct{ m mood.Mood }

func (f fruitItem) Title() string       { return f.m.Icon + " " + f.m.ID }
func (f fruitItem) Description() string { return f.m.Title }
func (f fruitItem) FilterValue() string { return f.m.ID }

// messages
type errMsg struct{ err error }
type monthLoadedMsg struct{ month calendar.Month }

// Model contains the browser state.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	cal  calendar.Model
	mode mode

	// start is the month being shown; month is the last grid loaded for it
	// and may lag behind while a load is in flight.
	start    time.Time
	month    calendar.Month
	day      int
	selected calendar.DayState
	today    time.Time

	fruits list.Model
	opts   printers.CalendarOptions
	status string
	width  int
}

// New creates a browser on the month of start. The cursor starts on today
// when today is in that month, on the first otherwise.
func New(ctx context.Context, svc *app.Service, start, today time.Time) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	start = calendar.MonthStart(start)

	items := make([]list.Item, 0, 5)
	for _, md := range mood.Catalog() {
		items = append(items, fruitItem{m: md})
	}
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	l := list.New(items, d, 32, 14)
	l.Title = "Pick a fruit"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	m := Model{
		svc:    svc,
		ctx:    ctx,
		mode:   modeCalendar,
		start:  start,
		day:    1,
		today:  today,
		fruits: l,
		opts:   printers.DefaultCalendarOptions(),
		status: defaultStatus,
	}
	if svc != nil && svc.Records != nil {
		m.cal = calendar.Model{Source: svc.Records}
	}
	if today.Year() == start.Year() && today.Month() == start.Month() {
		m.day = today.Day()
	}
	m.refreshSelection()
	return m
}

// Init loads the first month.
func (m Model) Init() tea.Cmd {
	return m.loadMonth()
}

func (m *Model) loadMonth() tea.Cmd {
	svc, ctx, start := m.svc, m.ctx, m.start
	return func() tea.Msg {
		if svc == nil {
			return errMsg{errNoService}
		}
		mo, err := svc.Calendar(ctx, start)
		if err != nil {
			return errMsg{err}
		}
		return monthLoadedMsg{mo}
	}
}

// refreshSelection rereads the state of the day under the cursor.
func (m *Model) refreshSelection() {
	m.selected = m.cal.DayState(m.ctx, m.day, m.start)
}

func (m *Model) selectedDate() time.Time {
	return m.start.AddDate(0, 0, m.day-1)
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case monthLoadedMsg:
		// a slower load for a month we already left
		if !msg.month.Start.Equal(m.start) {
			break
		}
		m.month = msg.month
		m.refreshSelection()
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeCalendar
			}
		case modeFruitSelect:
			switch msg.String() {
			case "esc", "q":
				m.mode = modeCalendar
				m.status = "Cancelled"
			case "enter":
				cmds = append(cmds, m.applyFruit())
			default:
				var cmd tea.Cmd
				m.fruits, cmd = m.fruits.Update(msg)
				cmds = append(cmds, cmd)
			}
		default:
			switch msg.String() {
			case "q", "esc":
				return m, tea.Quit
			case "?":
				m.mode = modeHelp
			case "left", "h":
				cmds = append(cmds, m.moveDay(-1))
			case "right", "l":
				cmds = append(cmds, m.moveDay(1))
			case "up", "k":
				cmds = append(cmds, m.moveDay(-7))
			case "down", "j":
				cmds = append(cmds, m.moveDay(7))
			case "[", "pgup":
				cmds = append(cmds, m.moveMonth(-1))
			case "]", "pgdown":
				cmds = append(cmds, m.moveMonth(1))
			case "t":
				cmds = append(cmds, m.jumpToday())
			case "enter":
				m.openPicker()
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// moveDay moves the cursor delta days, crossing into the neighbouring month
// when it runs off either end.
func (m *Model) moveDay(delta int) tea.Cmd {
	d := m.day + delta
	switch n := calendar.DaysIn(m.start); {
	case d < 1:
		m.start = calendar.AdvanceMonth(m.start, -1)
		d += calendar.DaysIn(m.start)
	case d > n:
		d -= n
		m.start = calendar.AdvanceMonth(m.start, 1)
	default:
		m.day = d
		m.refreshSelection()
		return nil
	}
	m.day = d
	m.refreshSelection()
	return m.loadMonth()
}

// moveMonth keeps the day of month, clamped to the length of the new month.
func (m *Model) moveMonth(delta int) tea.Cmd {
	m.start = calendar.AdvanceMonth(m.start, delta)
	if n := calendar.DaysIn(m.start); m.day > n {
		m.day = n
	}
	m.refreshSelection()
	return m.loadMonth()
}

func (m *Model) jumpToday() tea.Cmd {
	m.start = calendar.MonthStart(m.today)
	m.day = m.today.Day()
	m.refreshSelection()
	return m.loadMonth()
}

// openPicker shows the fruit list with the day's current fruit highlighted.
func (m *Model) openPicker() {
	idx := 0
	if m.selected.HasMood() {
		for i, it := range m.fruits.Items() {
			if f, ok := it.(fruitItem); ok && f.m.ID == m.selected.Entry.MoodID {
				idx = i
			}
		}
	}
	m.fruits.Select(idx)
	m.mode = modeFruitSelect
	m.status = "Pick a fruit: ↑/↓ move, enter save, esc cancel"
}

func (m *Model) applyFruit() tea.Cmd {
	m.mode = modeCalendar
	f, ok := m.fruits.SelectedItem().(fruitItem)
	if !ok {
		return nil
	}
	if m.svc == nil {
		m.status = "ERR: " + errNoService.Error()
		return nil
	}
	e, err := m.svc.Set(m.ctx, m.selectedDate(), f.m.ID)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return nil
	}
	m.status = fmt.Sprintf("Saved %s %s for %s", f.m.Icon, f.m.ID, e.Date)
	m.refreshSelection()
	return m.loadMonth()
}

func (m Model) wrapWidth() int {
	if m.width > 0 && m.width < defaultWidth {
		return m.width
	}
	return defaultWidth
}

var (
	faint       = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// dayLine describes the day under the cursor.
func (m Model) dayLine() string {
	date := m.selectedDate().Format(mood.LayoutISO)
	if !m.selected.HasMood() {
		return date + "  " + faint.Render("no mood recorded")
	}
	e := m.selected.Entry
	icon := "?"
	if md, ok := e.Mood(); ok {
		icon = md.Icon
	}
	return fmt.Sprintf("%s  %s %s  %s", date, icon, e.MoodID, e.Emotion)
}

// View renders the month grid, the selected day and the picker or help
// overlay.
func (m Model) View() string {
	var b strings.Builder

	opts := m.opts
	opts.Today = m.today
	opts.Selected = m.day
	if m.month.Start.Equal(m.start) {
		b.WriteString(printers.RenderMonth(m.month, opts))
	} else {
		b.WriteString(m.start.Format("January 2006") + "\n" + faint.Render("loading..."))
	}
	b.WriteString("\n\n" + m.dayLine())

	switch m.mode {
	case modeFruitSelect:
		picker := m.fruits.View()
		if f, ok := m.fruits.SelectedItem().(fruitItem); ok {
			picker += "\n\n" + faint.Render(wordwrap.String(f.m.LongDescription, m.wrapWidth()))
		}
		b.WriteString("\n\n" + panelStyle.Render(picker))
	case modeHelp:
		b.WriteString("\n\n" + lipgloss.NewStyle().Italic(true).Render(wordwrap.String(helpText, m.wrapWidth())))
	}

	return b.String() + "\n\n" + statusStyle.Render(m.status)
}

// Run starts the browser and blocks until the user quits.
func Run(ctx context.Context, svc *app.Service, start, today time.Time) error {
	p := tea.NewProgram(New(ctx, svc, start, today), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
