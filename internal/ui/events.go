package ui

import (
	"fmt"
	"strings"

	"github.com/five82/almanac/internal/calendar"
	"github.com/five82/almanac/internal/coordinator"
)

// eventLog records listener calls so they can be shown in the log pane. It is
// shared by pointer between Model copies.
type eventLog struct {
	entries []event
	limit   int
}

type event struct {
	kind   coordinator.NotificationKind
	date   calendar.Date
	month  calendar.MonthData
	source calendar.UpdateSource
}

func newEventLog(limit int) *eventLog {
	return &eventLog{limit: limit}
}

func (l *eventLog) add(e event) {
	l.entries = append(l.entries, e)
	if l.limit > 0 && len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

func (l *eventLog) onDateChanged(d calendar.Date, s calendar.UpdateSource) {
	l.add(event{kind: coordinator.DateChanged, date: d, source: s})
}

func (l *eventLog) onMonthChanged(m calendar.MonthData, s calendar.UpdateSource) {
	l.add(event{kind: coordinator.MonthChanged, month: m, source: s})
}

func (e event) String() string {
	if e.kind == coordinator.MonthChanged {
		return fmt.Sprintf("%-13s %04d-%02d      %s", e.kind, e.month.Year, e.month.Month, e.source)
	}
	return fmt.Sprintf("%-13s %s   %s", e.kind, e.date, e.source)
}

// render draws the log, oldest first.
func (l *eventLog) render(styles Styles) string {
	if len(l.entries) == 0 {
		return styles.FaintText.Render("No notifications yet")
	}
	lines := make([]string, len(l.entries))
	for i, e := range l.entries {
		style := styles.DateEvent
		if e.kind == coordinator.MonthChanged {
			style = styles.MonthEvent
		}
		lines[i] = style.Render(e.String())
	}
	return strings.Join(lines, "\n")
}
