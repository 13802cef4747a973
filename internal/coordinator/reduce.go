package coordinator

import "github.com/five82/almanac/internal/calendar"

// State is the coordinator's date triple plus bookkeeping.
type State struct {
	Date         calendar.Date
	PreviousDate calendar.Date
	SelectedDate calendar.Date
	UpdateSource calendar.UpdateSource

	// HasInitialized latches after the first owner-driven synchronization.
	HasInitialized bool
}

// InitialState seeds every date from the owner's initial date.
func InitialState(date calendar.Date) State {
	return State{
		Date:         date,
		PreviousDate: date,
		SelectedDate: date,
		UpdateSource: calendar.CalendarInit,
	}
}

// Action is a single date change request.
type Action struct {
	Date   calendar.Date
	Source calendar.UpdateSource
}

// NotificationKind distinguishes listener slots.
type NotificationKind int

const (
	DateChanged NotificationKind = iota
	MonthChanged
)

func (k NotificationKind) String() string {
	if k == MonthChanged {
		return "month-changed"
	}
	return "date-changed"
}

// Notification is a pending listener call produced by Reduce. Source is
// already remapped for listeners.
type Notification struct {
	Kind   NotificationKind
	Date   calendar.Date
	Month  calendar.MonthData
	Source calendar.UpdateSource
}

// ListenerSource maps a stored update source to the one reported to
// listeners. Arrow presses are reported as page scrolls for older callers;
// the stored source keeps the original value.
func ListenerSource(source calendar.UpdateSource) calendar.UpdateSource {
	switch source {
	case calendar.ArrowPress, calendar.WeekArrowPress:
		return calendar.PageScroll
	default:
		return source
	}
}

// Reduce applies a date change and returns the new state along with the
// listener calls it implies, date-changed first. Equal dates are not
// short-circuited.
func Reduce(s State, a Action, noAutoSelect calendar.SourceSet) (State, []Notification) {
	before := s.Date

	s.PreviousDate = before
	s.Date = a.Date
	if !noAutoSelect.Has(a.Source) {
		s.SelectedDate = a.Date
	}
	s.UpdateSource = a.Source

	source := ListenerSource(a.Source)
	notes := []Notification{{Kind: DateChanged, Date: a.Date, Source: source}}
	if !calendar.SameMonth(a.Date, before) {
		notes = append(notes, Notification{
			Kind:   MonthChanged,
			Date:   a.Date,
			Month:  calendar.MonthDataOf(a.Date),
			Source: source,
		})
	}
	return s, notes
}

// ReduceSync handles an owner update of the supplied date. Only the first
// divergence from the current date is applied, as a PROP_UPDATE; after that
// the latch is set and owner updates are ignored.
func ReduceSync(s State, external calendar.Date, noAutoSelect calendar.SourceSet) (State, []Notification, bool) {
	if s.HasInitialized || external.IsZero() || external == s.Date {
		return s, nil, false
	}
	next, notes := Reduce(s, Action{Date: external, Source: calendar.PropUpdate}, noAutoSelect)
	next.HasInitialized = true
	return next, notes, true
}
