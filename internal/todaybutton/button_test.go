package todaybutton

import (
	"strings"
	"testing"
	"time"

	"github.com/five82/almanac/internal/calendar"
	"github.com/five82/almanac/internal/coordinator"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 9, 30, 0, 0, time.Local)
}

func newCoordinator(t *testing.T, date string, btn *Button, sources *[]calendar.UpdateSource) *coordinator.Coordinator {
	t.Helper()
	return coordinator.New(coordinator.Options{
		Date:            calendar.MustParseDate(date),
		ShowTodayButton: true,
		TodayButton:     btn,
		OnDateChanged: func(_ calendar.Date, s calendar.UpdateSource) {
			if sources != nil {
				*sources = append(*sources, s)
			}
		},
	})
}

func TestPress_JumpsToToday(t *testing.T) {
	btn := New(fixedNow)
	var sources []calendar.UpdateSource
	c := newCoordinator(t, "2024-01-02", btn, &sources)

	if !btn.Press(c.Context()) {
		t.Fatalf("Press returned false, want true")
	}
	if got := c.State().Date; got != calendar.MustParseDate("2024-03-15") {
		t.Fatalf("Date = %s, want 2024-03-15", got)
	}
	if len(sources) != 1 || sources[0] != calendar.TodayPress {
		t.Fatalf("listener sources = %v, want [TODAY_PRESS]", sources)
	}
}

func TestPress_IgnoredWhenDisabledThroughCoordinator(t *testing.T) {
	btn := New(fixedNow)
	c := newCoordinator(t, "2024-01-02", btn, nil)

	c.Context().SetDisabled(true)
	if !btn.Disabled() {
		t.Fatalf("Disabled() = false after SetDisabled(true)")
	}
	if btn.Press(c.Context()) {
		t.Fatalf("Press returned true while disabled")
	}
	if got := c.State().Date; got != calendar.MustParseDate("2024-01-02") {
		t.Fatalf("Date = %s, want unchanged", got)
	}

	c.SetDisabled(false)
	if !btn.Press(c.Context()) {
		t.Fatalf("Press returned false after re-enabling")
	}
}

func TestVisible_HiddenOnToday(t *testing.T) {
	btn := New(fixedNow)
	c := newCoordinator(t, "2024-03-15", btn, nil)

	if btn.Visible(c.Context()) {
		t.Fatalf("Visible = true on today")
	}
	if btn.Press(c.Context()) {
		t.Fatalf("Press returned true while hidden")
	}
	if got := btn.View(c.Context(), Style{}); got != "" {
		t.Fatalf("View = %q, want empty while hidden", got)
	}
}

func TestView_RendersLabelAndMargin(t *testing.T) {
	btn := New(fixedNow)
	c := newCoordinator(t, "2024-02-01", btn, nil)

	got := btn.View(c.Context(), Style{BottomMargin: 2})
	if !strings.Contains(got, "Today") {
		t.Fatalf("View = %q, want it to contain Today", got)
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Fatalf("View = %q, want two trailing margin lines", got)
	}
}
