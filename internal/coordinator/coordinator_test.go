package coordinator

import (
	"reflect"
	"testing"

	"github.com/five82/almanac/internal/calendar"
)

type dateCall struct {
	date   string
	source calendar.UpdateSource
}

type monthCall struct {
	year, month int
	source      calendar.UpdateSource
}

// recorder captures listener calls in the order they fire.
type recorder struct {
	dates  []dateCall
	months []monthCall
	order  []string
}

func (r *recorder) options(date string) Options {
	return Options{
		Date: calendar.MustParseDate(date),
		OnDateChanged: func(d calendar.Date, s calendar.UpdateSource) {
			r.dates = append(r.dates, dateCall{d.String(), s})
			r.order = append(r.order, "date")
		},
		OnMonthChanged: func(m calendar.MonthData, s calendar.UpdateSource) {
			r.months = append(r.months, monthCall{m.Year, m.Month, s})
			r.order = append(r.order, "month")
		},
	}
}

type fakeButton struct {
	calls []bool
}

func (f *fakeButton) Disable(disabled bool) {
	f.calls = append(f.calls, disabled)
}

func d(s string) calendar.Date {
	return calendar.MustParseDate(s)
}

func TestNew_SeedsState(t *testing.T) {
	c := New(Options{Date: d("2024-03-15")})
	st := c.State()
	want := State{
		Date:         d("2024-03-15"),
		PreviousDate: d("2024-03-15"),
		SelectedDate: d("2024-03-15"),
		UpdateSource: calendar.CalendarInit,
	}
	if st != want {
		t.Fatalf("State = %#v, want %#v", st, want)
	}
}

func TestSetDate_WorkedExample(t *testing.T) {
	var r recorder
	c := New(r.options("2024-03-15"))

	c.SetDate(d("2024-03-20"), calendar.DayPress)
	st := c.State()
	if st.Date != d("2024-03-20") || st.PreviousDate != d("2024-03-15") || st.SelectedDate != d("2024-03-20") {
		t.Fatalf("after DAY_PRESS state = %#v", st)
	}
	if want := []dateCall{{"2024-03-20", calendar.DayPress}}; !reflect.DeepEqual(r.dates, want) {
		t.Fatalf("date calls = %#v, want %#v", r.dates, want)
	}
	if len(r.months) != 0 {
		t.Fatalf("month calls = %#v, want none", r.months)
	}

	c.SetDate(d("2024-04-01"), calendar.ArrowPress)
	st = c.State()
	if st.Date != d("2024-04-01") || st.PreviousDate != d("2024-03-20") {
		t.Fatalf("after ARROW_PRESS state = %#v", st)
	}
	if got := r.dates[1]; got != (dateCall{"2024-04-01", calendar.PageScroll}) {
		t.Fatalf("second date call = %#v, want 2024-04-01 PAGE_SCROLL", got)
	}
	if want := []monthCall{{2024, 4, calendar.PageScroll}}; !reflect.DeepEqual(r.months, want) {
		t.Fatalf("month calls = %#v, want %#v", r.months, want)
	}
	if want := []string{"date", "date", "month"}; !reflect.DeepEqual(r.order, want) {
		t.Fatalf("call order = %v, want %v", r.order, want)
	}
}

func TestSetDate_MonthChangeDetection(t *testing.T) {
	cases := []struct {
		name      string
		from, to  string
		wantMonth bool
	}{
		{"same month", "2024-03-01", "2024-03-31", false},
		{"next month", "2024-03-31", "2024-04-01", true},
		{"previous month", "2024-03-01", "2024-02-29", true},
		{"same month next year", "2024-03-10", "2025-03-10", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r recorder
			c := New(r.options(tc.from))
			c.SetDate(d(tc.to), calendar.DayPress)

			if len(r.dates) != 1 {
				t.Fatalf("date calls = %d, want 1", len(r.dates))
			}
			if got := len(r.months) == 1; got != tc.wantMonth {
				t.Fatalf("month fired = %v, want %v", got, tc.wantMonth)
			}
			if tc.wantMonth {
				to := d(tc.to)
				if r.months[0].year != to.Year || r.months[0].month != int(to.Month) {
					t.Fatalf("month payload = %#v, want %s", r.months[0], tc.to)
				}
			}
		})
	}
}

func TestSetDate_DisableAutoDaySelection(t *testing.T) {
	var r recorder
	opts := r.options("2024-03-15")
	opts.DisableAutoDaySelection = []calendar.UpdateSource{calendar.WeekScroll, calendar.MonthScroll}
	c := New(opts)

	c.SetDate(d("2024-03-22"), calendar.WeekScroll)
	st := c.State()
	if st.SelectedDate != d("2024-03-15") {
		t.Fatalf("SelectedDate = %s, want unchanged 2024-03-15", st.SelectedDate)
	}
	if st.Date != d("2024-03-22") || st.PreviousDate != d("2024-03-15") {
		t.Fatalf("state = %#v, want date moved", st)
	}
	if len(r.dates) != 1 {
		t.Fatalf("date listener still fires for suppressed sources; got %d calls", len(r.dates))
	}

	c.SetDate(d("2024-03-23"), calendar.DayPress)
	if st := c.State(); st.SelectedDate != st.Date {
		t.Fatalf("SelectedDate = %s, want %s", st.SelectedDate, st.Date)
	}
}

func TestSetDate_RemapOnlyForListeners(t *testing.T) {
	for _, src := range []calendar.UpdateSource{calendar.ArrowPress, calendar.WeekArrowPress} {
		t.Run(src.String(), func(t *testing.T) {
			var r recorder
			c := New(r.options("2024-03-15"))

			c.SetDate(d("2024-03-22"), src)
			if r.dates[0].source != calendar.PageScroll {
				t.Fatalf("listener source = %v, want PAGE_SCROLL", r.dates[0].source)
			}
			if got := c.State().UpdateSource; got != src {
				t.Fatalf("stored UpdateSource = %v, want %v", got, src)
			}
			if got := c.Context().UpdateSource; got != src {
				t.Fatalf("context UpdateSource = %v, want %v", got, src)
			}

			c.SetDate(d("2024-03-23"), calendar.DayPress)
			if got := c.State().PreviousDate; got != d("2024-03-22") {
				t.Fatalf("PreviousDate = %s, want 2024-03-22", got)
			}
		})
	}
}

func TestSetDate_OtherSourcesPassThrough(t *testing.T) {
	for _, src := range calendar.UpdateSources() {
		if src == calendar.ArrowPress || src == calendar.WeekArrowPress {
			continue
		}
		if got := ListenerSource(src); got != src {
			t.Fatalf("ListenerSource(%v) = %v, want unchanged", src, got)
		}
	}
}

func TestSetDate_EqualDateStillNotifies(t *testing.T) {
	var r recorder
	c := New(r.options("2024-03-15"))
	c.SetDate(d("2024-03-20"), calendar.DayPress)
	c.SetDate(d("2024-03-20"), calendar.DayPress)

	st := c.State()
	if st.PreviousDate != st.Date {
		t.Fatalf("PreviousDate = %s, want collapsed to %s", st.PreviousDate, st.Date)
	}
	if len(r.dates) != 2 {
		t.Fatalf("date calls = %d, want 2", len(r.dates))
	}
	if len(r.months) != 0 {
		t.Fatalf("month calls = %d, want 0", len(r.months))
	}
}

func TestSetDate_NoListenersIsSilent(t *testing.T) {
	c := New(Options{Date: d("2024-03-15")})
	c.SetDate(d("2024-05-01"), calendar.MonthScroll)
	if c.State().Date != d("2024-05-01") {
		t.Fatalf("Date = %s, want 2024-05-01", c.State().Date)
	}
}

func TestSyncExternalDate_FirstDivergenceWinsOnce(t *testing.T) {
	var r recorder
	c := New(r.options("2024-03-15"))

	if c.SyncExternalDate(d("2024-03-15")) {
		t.Fatalf("sync with unchanged owner date applied")
	}
	if !c.SyncExternalDate(d("2024-06-01")) {
		t.Fatalf("first divergent owner date was not applied")
	}
	st := c.State()
	if st.Date != d("2024-06-01") || st.UpdateSource != calendar.PropUpdate || !st.HasInitialized {
		t.Fatalf("state after sync = %#v", st)
	}
	if want := []dateCall{{"2024-06-01", calendar.PropUpdate}}; !reflect.DeepEqual(r.dates, want) {
		t.Fatalf("date calls = %#v, want %#v", r.dates, want)
	}
	if len(r.months) != 1 {
		t.Fatalf("month calls = %d, want 1", len(r.months))
	}

	if c.SyncExternalDate(d("2024-07-01")) {
		t.Fatalf("owner date applied after latch")
	}
	if c.State().Date != d("2024-06-01") {
		t.Fatalf("Date = %s, want 2024-06-01", c.State().Date)
	}
}

func TestSyncExternalDate_AfterInternalChange(t *testing.T) {
	var r recorder
	c := New(r.options("2024-03-15"))
	c.SetDate(d("2024-03-20"), calendar.DayPress)

	// No sync has happened yet, so the first owner update that differs from
	// the current date is applied, and only that one.
	if !c.SyncExternalDate(d("2024-03-25")) {
		t.Fatalf("first divergent owner date was not applied")
	}
	if c.SyncExternalDate(d("2024-03-28")) {
		t.Fatalf("second owner date applied")
	}
	c.SetDate(d("2024-03-30"), calendar.DayPress)
	if c.SyncExternalDate(d("2024-04-02")) {
		t.Fatalf("owner date applied after internal change and latch")
	}

	props := 0
	for _, call := range r.dates {
		if call.source == calendar.PropUpdate {
			props++
		}
	}
	if props != 1 {
		t.Fatalf("PROP_UPDATE notifications = %d, want 1", props)
	}
}

func TestSyncExternalDate_MatchingCurrentDoesNotLatch(t *testing.T) {
	c := New(Options{Date: d("2024-03-15")})
	c.SetDate(d("2024-03-20"), calendar.DayPress)

	if c.SyncExternalDate(d("2024-03-20")) {
		t.Fatalf("owner date equal to current was applied")
	}
	if c.State().HasInitialized {
		t.Fatalf("latch set without a synchronization")
	}
	if !c.SyncExternalDate(d("2024-03-21")) {
		t.Fatalf("later divergent owner date was not applied")
	}
}

func TestSetDisabled_RelaysOnlyWhenShown(t *testing.T) {
	btn := &fakeButton{}
	hidden := New(Options{Date: d("2024-03-15"), TodayButton: btn})
	hidden.SetDisabled(true)
	if len(btn.calls) != 0 {
		t.Fatalf("Disable called %d times with button hidden, want 0", len(btn.calls))
	}

	shown := New(Options{Date: d("2024-03-15"), TodayButton: btn, ShowTodayButton: true})
	shown.Context().SetDisabled(true)
	shown.SetDisabled(false)
	if want := []bool{true, false}; !reflect.DeepEqual(btn.calls, want) {
		t.Fatalf("Disable calls = %v, want %v", btn.calls, want)
	}

	noButton := New(Options{Date: d("2024-03-15"), ShowTodayButton: true})
	noButton.SetDisabled(true)
}

func TestContext_SnapshotAndSetters(t *testing.T) {
	var r recorder
	opts := r.options("2024-03-15")
	opts.NumberOfDays = 3
	c := New(opts)

	ctx := c.Context()
	if ctx.NumberOfDays != 3 || ctx.TimelineLeftInset != DefaultTimelineLeftInset {
		t.Fatalf("layout hints = %d/%d, want 3/%d", ctx.NumberOfDays, ctx.TimelineLeftInset, DefaultTimelineLeftInset)
	}

	ctx.SetDate(d("2024-03-16"), calendar.ListDrag)
	if ctx.Date != d("2024-03-15") {
		t.Fatalf("snapshot mutated: Date = %s", ctx.Date)
	}
	fresh := c.Context()
	if fresh.Date != d("2024-03-16") || fresh.PreviousDate != d("2024-03-15") || fresh.UpdateSource != calendar.ListDrag {
		t.Fatalf("fresh context = %#v", fresh)
	}

	var zero Context
	zero.SetDate(d("2024-01-01"), calendar.DayPress)
	zero.SetDisabled(true)
}

func TestReduce_IsPure(t *testing.T) {
	before := InitialState(d("2024-03-15"))
	snapshot := before

	next, notes := Reduce(before, Action{Date: d("2024-04-02"), Source: calendar.WeekArrowPress}, nil)
	if before != snapshot {
		t.Fatalf("Reduce mutated its input")
	}
	if next.UpdateSource != calendar.WeekArrowPress {
		t.Fatalf("UpdateSource = %v, want WEEK_ARROW_PRESS", next.UpdateSource)
	}
	if len(notes) != 2 || notes[0].Kind != DateChanged || notes[1].Kind != MonthChanged {
		t.Fatalf("notifications = %#v, want date then month", notes)
	}
	if notes[1].Month.Month != 4 || notes[1].Source != calendar.PageScroll {
		t.Fatalf("month notification = %#v", notes[1])
	}
}

func TestReduceSync_IgnoresZeroDate(t *testing.T) {
	st, notes, applied := ReduceSync(InitialState(d("2024-03-15")), calendar.Date{}, nil)
	if applied || notes != nil || st.HasInitialized {
		t.Fatalf("ReduceSync(zero) = %#v, %v, %v; want no-op", st, notes, applied)
	}
}
