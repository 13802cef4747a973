package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// UpdateSource tags why the active date last changed.
type UpdateSource int

const (
	CalendarInit UpdateSource = iota
	PropUpdate
	PageScroll
	ArrowPress
	WeekArrowPress
	TodayPress
	DayPress
	WeekScroll
	ListDrag
	MonthScroll
)

// ErrUnknownUpdateSource is returned when a name does not match any source.
var ErrUnknownUpdateSource = errors.New("unknown update source")

var sourceNames = [...]string{
	CalendarInit:   "CALENDAR_INIT",
	PropUpdate:     "PROP_UPDATE",
	PageScroll:     "PAGE_SCROLL",
	ArrowPress:     "ARROW_PRESS",
	WeekArrowPress: "WEEK_ARROW_PRESS",
	TodayPress:     "TODAY_PRESS",
	DayPress:       "DAY_PRESS",
	WeekScroll:     "WEEK_SCROLL",
	ListDrag:       "LIST_DRAG",
	MonthScroll:    "MONTH_SCROLL",
}

// UpdateSources lists every source in declaration order.
func UpdateSources() []UpdateSource {
	out := make([]UpdateSource, len(sourceNames))
	for i := range sourceNames {
		out[i] = UpdateSource(i)
	}
	return out
}

// Valid reports whether s is one of the declared sources.
func (s UpdateSource) Valid() bool {
	return s >= 0 && int(s) < len(sourceNames)
}

func (s UpdateSource) String() string {
	if !s.Valid() {
		return fmt.Sprintf("UpdateSource(%d)", int(s))
	}
	return sourceNames[s]
}

// ParseUpdateSource accepts the canonical upper-case names; case and
// surrounding whitespace are ignored.
func ParseUpdateSource(name string) (UpdateSource, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range sourceNames {
		if n == want {
			return UpdateSource(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUpdateSource, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s UpdateSource) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUpdateSource, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *UpdateSource) UnmarshalText(text []byte) error {
	parsed, err := ParseUpdateSource(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SourceSet is a set of update sources. The nil set is empty.
type SourceSet map[UpdateSource]struct{}

// NewSourceSet builds a set from the given sources.
func NewSourceSet(sources ...UpdateSource) SourceSet {
	set := make(SourceSet, len(sources))
	for _, s := range sources {
		set[s] = struct{}{}
	}
	return set
}

// Has reports whether s is in the set.
func (set SourceSet) Has(s UpdateSource) bool {
	_, ok := set[s]
	return ok
}

// Sorted returns the members in declaration order.
func (set SourceSet) Sorted() []UpdateSource {
	var out []UpdateSource
	for _, s := range UpdateSources() {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}
