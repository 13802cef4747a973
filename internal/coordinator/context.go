package coordinator

import "github.com/five82/almanac/internal/calendar"

// Context is the view of the coordinator handed to descendant consumers. The
// date fields are a snapshot; take a fresh Context after calling SetDate.
type Context struct {
	Date         calendar.Date
	PreviousDate calendar.Date
	SelectedDate calendar.Date
	UpdateSource calendar.UpdateSource

	NumberOfDays      int
	TimelineLeftInset int

	c *Coordinator
}

// Context returns a snapshot of the state bound to this coordinator's setters.
func (c *Coordinator) Context() Context {
	return Context{
		Date:              c.state.Date,
		PreviousDate:      c.state.PreviousDate,
		SelectedDate:      c.state.SelectedDate,
		UpdateSource:      c.state.UpdateSource,
		NumberOfDays:      c.numberOfDays,
		TimelineLeftInset: c.timelineLeftInset,
		c:                 c,
	}
}

// SetDate forwards to the owning coordinator. It is a no-op on the zero
// Context.
func (ctx Context) SetDate(date calendar.Date, source calendar.UpdateSource) {
	if ctx.c == nil {
		return
	}
	ctx.c.SetDate(date, source)
}

// SetDisabled forwards to the owning coordinator.
func (ctx Context) SetDisabled(disabled bool) {
	if ctx.c == nil {
		return
	}
	ctx.c.SetDisabled(disabled)
}
