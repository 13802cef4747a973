package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-03-15 ")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	want := Date{Year: 2024, Month: time.March, Day: 15}
	if d != want {
		t.Fatalf("ParseDate = %#v, want %#v", d, want)
	}
	if d.String() != "2024-03-15" {
		t.Fatalf("String = %q, want 2024-03-15", d.String())
	}
}

func TestParseDate_InvalidWrapsTimeError(t *testing.T) {
	_, err := ParseDate("2024-02-30")
	if err == nil {
		t.Fatalf("ParseDate returned nil error, want error")
	}
	var perr *time.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseDate error = %v, want it to wrap *time.ParseError", err)
	}
}

func TestSameMonth(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want bool
	}{
		{"same day", "2024-03-15", "2024-03-15", true},
		{"same month", "2024-03-01", "2024-03-31", true},
		{"adjacent months", "2024-03-31", "2024-04-01", false},
		{"same month different year", "2024-03-10", "2025-03-10", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SameMonth(MustParseDate(tc.a), MustParseDate(tc.b))
			if got != tc.want {
				t.Fatalf("SameMonth(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestAddMonths_ClampsDay(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"2024-01-31", 1, "2024-02-29"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-03-31", -1, "2024-02-29"},
		{"2024-12-15", 1, "2025-01-15"},
		{"2024-01-15", -1, "2023-12-15"},
	}
	for _, tc := range cases {
		got := MustParseDate(tc.in).AddMonths(tc.n)
		if got.String() != tc.want {
			t.Fatalf("AddMonths(%s, %d) = %s, want %s", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestAddDays_CrossesYear(t *testing.T) {
	got := MustParseDate("2024-12-31").AddDays(1)
	if got.String() != "2025-01-01" {
		t.Fatalf("AddDays = %s, want 2025-01-01", got)
	}
}

func TestDateUnmarshalText(t *testing.T) {
	var d Date
	if err := d.UnmarshalText([]byte("2024-04-01")); err != nil {
		t.Fatalf("UnmarshalText returned error: %v", err)
	}
	if d.String() != "2024-04-01" {
		t.Fatalf("UnmarshalText = %s, want 2024-04-01", d)
	}
	if err := d.UnmarshalText([]byte("  ")); err != nil {
		t.Fatalf("UnmarshalText(blank) returned error: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("UnmarshalText(blank) = %#v, want zero", d)
	}
}

func TestMonthDataOf(t *testing.T) {
	got := MonthDataOf(MustParseDate("2024-04-01"))
	if got.Year != 2024 || got.Month != 4 || got.Day != 1 {
		t.Fatalf("MonthDataOf = %#v, want 2024/4/1", got)
	}
	if got.DateString != "2024-04-01" {
		t.Fatalf("DateString = %q, want 2024-04-01", got.DateString)
	}
	want := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if got.Timestamp != want {
		t.Fatalf("Timestamp = %d, want %d", got.Timestamp, want)
	}
}

func TestParseUpdateSource(t *testing.T) {
	for _, s := range UpdateSources() {
		got, err := ParseUpdateSource(s.String())
		if err != nil {
			t.Fatalf("ParseUpdateSource(%s) returned error: %v", s, err)
		}
		if got != s {
			t.Fatalf("ParseUpdateSource(%s) = %v, want %v", s, got, s)
		}
	}
	if got, err := ParseUpdateSource(" week_scroll "); err != nil || got != WeekScroll {
		t.Fatalf("ParseUpdateSource(lowercase) = %v, %v; want WEEK_SCROLL", got, err)
	}
	if _, err := ParseUpdateSource("SWIPE"); !errors.Is(err, ErrUnknownUpdateSource) {
		t.Fatalf("ParseUpdateSource(SWIPE) error = %v, want ErrUnknownUpdateSource", err)
	}
}

func TestUpdateSources_ClosedSet(t *testing.T) {
	if n := len(UpdateSources()); n != 10 {
		t.Fatalf("len(UpdateSources()) = %d, want 10", n)
	}
	if UpdateSource(42).Valid() {
		t.Fatalf("UpdateSource(42).Valid() = true, want false")
	}
	if _, err := UpdateSource(42).MarshalText(); err == nil {
		t.Fatalf("MarshalText on invalid source returned nil error")
	}
}

func TestSourceSet(t *testing.T) {
	set := NewSourceSet(MonthScroll, WeekScroll)
	if !set.Has(WeekScroll) || set.Has(DayPress) {
		t.Fatalf("Has mismatch for %v", set.Sorted())
	}
	sorted := set.Sorted()
	if len(sorted) != 2 || sorted[0] != WeekScroll || sorted[1] != MonthScroll {
		t.Fatalf("Sorted = %v, want [WEEK_SCROLL MONTH_SCROLL]", sorted)
	}

	var empty SourceSet
	if empty.Has(DayPress) {
		t.Fatalf("nil set reported membership")
	}
}
