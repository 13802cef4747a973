// Package coordinator tracks the active calendar date for a view and tells
// listeners when it moves.
//
// # State
//
// A Coordinator keeps four values: the active Date, the PreviousDate (the
// active date just before the latest SetDate), the SelectedDate, and the
// UpdateSource of the latest change. SelectedDate normally follows Date, but
// sources listed in Options.DisableAutoDaySelection move only Date.
//
// # Updates
//
// All transitions are computed by Reduce and ReduceSync, which are pure and
// return the listener calls to make. The Coordinator stores the result and
// then runs those calls in order:
//
//	SetDate(d, src)
//	→ PreviousDate = Date, Date = d
//	→ SelectedDate = d        (unless src suppresses auto-selection)
//	→ UpdateSource = src
//	→ OnDateChanged(d, ListenerSource(src))
//	→ OnMonthChanged(month(d), ListenerSource(src))   (only if the month moved)
//
// ListenerSource reports ARROW_PRESS and WEEK_ARROW_PRESS as PAGE_SCROLL.
// The stored UpdateSource is never remapped.
//
// # Owner synchronization
//
// SyncExternalDate feeds changes of the owner-supplied date. The first owner
// value that differs from the active date is applied as PROP_UPDATE; after
// that HasInitialized is set and owner updates are ignored.
//
// # Today control
//
// The coordinator holds the today control only as a Disabler. SetDisabled is
// relayed when Options.ShowTodayButton is set and is a no-op otherwise.
package coordinator
