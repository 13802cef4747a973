// Package todaybutton implements the floating "Today" control that jumps the
// calendar back to the current date.
package todaybutton

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/almanac/internal/calendar"
	"github.com/five82/almanac/internal/coordinator"
)

const label = "Today"

// Style holds the resolved styles for the button.
type Style struct {
	Enabled  lipgloss.Style
	Disabled lipgloss.Style
	// BottomMargin is the number of blank lines rendered below the button.
	BottomMargin int
}

// Button is the jump-to-today control. The zero value is usable and reads
// the wall clock.
type Button struct {
	disabled bool
	now      func() time.Time
}

// New returns a button that reads today's date from now. A nil now uses
// time.Now.
func New(now func() time.Time) *Button {
	return &Button{now: now}
}

// Disable implements coordinator.Disabler.
func (b *Button) Disable(disabled bool) {
	b.disabled = disabled
}

// Disabled reports whether presses are currently ignored.
func (b *Button) Disabled() bool {
	return b.disabled
}

// Today returns the date the button jumps to.
func (b *Button) Today() calendar.Date {
	return calendar.Today(b.now)
}

// Visible reports whether the button should be drawn for ctx. It hides
// while the active date is already today.
func (b *Button) Visible(ctx coordinator.Context) bool {
	return ctx.Date != b.Today()
}

// Press jumps ctx to today with TODAY_PRESS. It returns false when the
// button is disabled or hidden.
func (b *Button) Press(ctx coordinator.Context) bool {
	if b.disabled || !b.Visible(ctx) {
		return false
	}
	ctx.SetDate(b.Today(), calendar.TodayPress)
	return true
}

// View renders the button for ctx, or an empty string when hidden.
func (b *Button) View(ctx coordinator.Context, style Style) string {
	if !b.Visible(ctx) {
		return ""
	}
	s := style.Enabled
	if b.disabled {
		s = style.Disabled
	}
	out := s.Render(label)
	if style.BottomMargin > 0 {
		out += strings.Repeat("\n", style.BottomMargin)
	}
	return out
}
