package coordinator

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/five82/almanac/internal/calendar"
)

// DefaultTimelineLeftInset matches the inset consumers assume when none is set.
const DefaultTimelineLeftInset = 72

// Disabler is the capability the coordinator holds on the today control.
type Disabler interface {
	Disable(disabled bool)
}

// Options configure a Coordinator.
type Options struct {
	// Date seeds the state. The zero Date is allowed but consumers will see
	// an empty date until the first SetDate or sync.
	Date calendar.Date

	OnDateChanged  func(date calendar.Date, source calendar.UpdateSource)
	OnMonthChanged func(month calendar.MonthData, source calendar.UpdateSource)

	// DisableAutoDaySelection lists sources that move the active date
	// without moving the selected date.
	DisableAutoDaySelection []calendar.UpdateSource

	ShowTodayButton bool
	TodayButton     Disabler

	NumberOfDays      int
	TimelineLeftInset int // zero uses DefaultTimelineLeftInset

	Logger *logrus.Entry
}

// Coordinator owns the active/previous/selected date state for a calendar
// view. It is driven from a single event loop and is not safe for concurrent
// use.
type Coordinator struct {
	state        State
	noAutoSelect calendar.SourceSet

	onDateChanged  func(calendar.Date, calendar.UpdateSource)
	onMonthChanged func(calendar.MonthData, calendar.UpdateSource)

	showTodayButton bool
	todayButton     Disabler

	numberOfDays      int
	timelineLeftInset int

	// lastExternal is the owner-supplied date as of the previous sync call.
	lastExternal calendar.Date

	log *logrus.Entry
}

// New creates a Coordinator seeded from opts.Date.
func New(opts Options) *Coordinator {
	inset := opts.TimelineLeftInset
	if inset == 0 {
		inset = DefaultTimelineLeftInset
	}

	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}

	return &Coordinator{
		state:             InitialState(opts.Date),
		noAutoSelect:      calendar.NewSourceSet(opts.DisableAutoDaySelection...),
		onDateChanged:     opts.OnDateChanged,
		onMonthChanged:    opts.OnMonthChanged,
		showTodayButton:   opts.ShowTodayButton,
		todayButton:       opts.TodayButton,
		numberOfDays:      opts.NumberOfDays,
		timelineLeftInset: inset,
		lastExternal:      opts.Date,
		log:               log,
	}
}

// State returns a copy of the current state.
func (c *Coordinator) State() State {
	return c.state
}

// SetDate moves the active date and notifies listeners.
func (c *Coordinator) SetDate(date calendar.Date, source calendar.UpdateSource) {
	next, notes := Reduce(c.state, Action{Date: date, Source: source}, c.noAutoSelect)
	c.apply(next, notes)
}

// SetDisabled relays to the today control when one is shown.
func (c *Coordinator) SetDisabled(disabled bool) {
	if !c.showTodayButton || c.todayButton == nil {
		return
	}
	c.todayButton.Disable(disabled)
}

// SyncExternalDate is called whenever the owner's supplied date may have
// changed. Repeated calls with the same value are not updates. It reports
// whether a PROP_UPDATE was applied.
func (c *Coordinator) SyncExternalDate(date calendar.Date) bool {
	if date == c.lastExternal {
		return false
	}
	c.lastExternal = date

	next, notes, applied := ReduceSync(c.state, date, c.noAutoSelect)
	if !applied {
		return false
	}
	c.apply(next, notes)
	c.log.WithField("date", date.String()).Debug("synchronized owner date; latch set")
	return true
}

func (c *Coordinator) apply(next State, notes []Notification) {
	c.state = next
	c.log.WithFields(logrus.Fields{
		"date":     next.Date.String(),
		"previous": next.PreviousDate.String(),
		"selected": next.SelectedDate.String(),
		"source":   next.UpdateSource.String(),
	}).Debug("date updated")

	for _, n := range notes {
		c.notify(n)
	}
}

func (c *Coordinator) notify(n Notification) {
	switch n.Kind {
	case DateChanged:
		if c.onDateChanged != nil {
			c.onDateChanged(n.Date, n.Source)
		}
	case MonthChanged:
		if c.onMonthChanged != nil {
			c.onMonthChanged(n.Month, n.Source)
		}
	}
}
