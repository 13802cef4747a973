package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderContext())
	b.WriteString("\n")

	if m.showTodayButton {
		if btn := m.today.View(m.Context(), m.styles.TodayButton); btn != "" {
			b.WriteString(lipgloss.PlaceHorizontal(contextPanelWidth, lipgloss.Right, btn))
		}
	}
	b.WriteString("\n")

	b.WriteString(m.styles.MutedText.Render("Notifications"))
	b.WriteString("\n")
	b.WriteString(m.eventsVP.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render("ALMANAC")
	theme := m.styles.FaintText.Render(m.theme.Name)
	return title + "  " + theme
}

// renderContext draws the values descendant consumers would see.
func (m Model) renderContext() string {
	ctx := m.Context()
	st := m.coord.State()
	s := m.styles

	row := func(label, value string) string {
		return s.Label.Render(label) + s.Value.Render(value)
	}

	selected := ctx.SelectedDate.String()
	if ctx.SelectedDate != ctx.Date {
		selected += s.MutedText.Render("  (held)")
	}

	today := "enabled"
	switch {
	case !m.showTodayButton:
		today = "hidden"
	case m.today.Disabled():
		today = "disabled"
	}

	rows := []string{
		row("Date", ctx.Date.String()),
		row("Previous", ctx.PreviousDate.String()),
		row("Selected", selected),
		row("Update source", ctx.UpdateSource.String()),
		row("Initialized", fmt.Sprintf("%t", st.HasInitialized)),
		row("Days / inset", fmt.Sprintf("%d / %d", ctx.NumberOfDays, ctx.TimelineLeftInset)),
		row("Today button", today),
	}

	return s.ContextWrapper.Width(contextPanelWidth).Render(strings.Join(rows, "\n"))
}

// renderHelp renders the help overlay from the key map.
func (m Model) renderHelp() string {
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Value.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(s.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	groups := m.keys.FullHelp()
	for i, group := range groups {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(s.Value.UnsetBold().Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
