package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/almanac/internal/calendar"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Day navigation
	PrevDay  key.Binding
	NextDay  key.Binding
	PrevDrag key.Binding
	NextDrag key.Binding

	// Week navigation
	PrevWeekScroll key.Binding
	NextWeekScroll key.Binding
	PrevWeekArrow  key.Binding
	NextWeekArrow  key.Binding

	// Month navigation
	PrevMonthArrow  key.Binding
	NextMonthArrow  key.Binding
	PrevMonthScroll key.Binding
	NextMonthScroll key.Binding

	// Page navigation (NumberOfDays at a time)
	PrevPage key.Binding
	NextPage key.Binding

	// Today control
	Today          key.Binding
	ToggleDisabled key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "Previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "Next day"),
		),
		PrevDrag: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "Drag list back a day"),
		),
		NextDrag: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "Drag list forward a day"),
		),

		PrevWeekScroll: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Scroll week back"),
		),
		NextWeekScroll: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Scroll week forward"),
		),
		PrevWeekArrow: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "Week arrow back"),
		),
		NextWeekArrow: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "Week arrow forward"),
		),

		PrevMonthArrow: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Month arrow back"),
		),
		NextMonthArrow: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Month arrow forward"),
		),
		PrevMonthScroll: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Scroll month back"),
		),
		NextMonthScroll: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Scroll month forward"),
		),

		PrevPage: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Page back"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Page forward"),
		),

		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Jump to today"),
		),
		ToggleDisabled: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Disable/enable today"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// move is a date step bound to a key.
type move struct {
	binding *key.Binding
	source  calendar.UpdateSource
	step    func(d calendar.Date, pageDays int) calendar.Date
}

func days(n int) func(calendar.Date, int) calendar.Date {
	return func(d calendar.Date, _ int) calendar.Date { return d.AddDays(n) }
}

func months(n int) func(calendar.Date, int) calendar.Date {
	return func(d calendar.Date, _ int) calendar.Date { return d.AddMonths(n) }
}

func pages(sign int) func(calendar.Date, int) calendar.Date {
	return func(d calendar.Date, pageDays int) calendar.Date {
		if pageDays <= 0 {
			pageDays = 1
		}
		return d.AddDays(sign * pageDays)
	}
}

// moves lists every key that changes the date and the update source it
// reports.
func (k *keyMap) moves() []move {
	return []move{
		{&k.PrevDay, calendar.DayPress, days(-1)},
		{&k.NextDay, calendar.DayPress, days(1)},
		{&k.PrevDrag, calendar.ListDrag, days(-1)},
		{&k.NextDrag, calendar.ListDrag, days(1)},
		{&k.PrevWeekScroll, calendar.WeekScroll, days(-7)},
		{&k.NextWeekScroll, calendar.WeekScroll, days(7)},
		{&k.PrevWeekArrow, calendar.WeekArrowPress, days(-7)},
		{&k.NextWeekArrow, calendar.WeekArrowPress, days(7)},
		{&k.PrevMonthArrow, calendar.ArrowPress, months(-1)},
		{&k.NextMonthArrow, calendar.ArrowPress, months(1)},
		{&k.PrevMonthScroll, calendar.MonthScroll, months(-1)},
		{&k.NextMonthScroll, calendar.MonthScroll, months(1)},
		{&k.PrevPage, calendar.PageScroll, pages(-1)},
		{&k.NextPage, calendar.PageScroll, pages(1)},
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Today, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevDrag, k.NextDrag},
		{k.PrevWeekScroll, k.NextWeekScroll, k.PrevWeekArrow, k.NextWeekArrow},
		{k.PrevMonthArrow, k.NextMonthArrow, k.PrevMonthScroll, k.NextMonthScroll},
		{k.PrevPage, k.NextPage},
		{k.Today, k.ToggleDisabled},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
