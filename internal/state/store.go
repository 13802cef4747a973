package state

import (
	"sync"
	"time"

	"github.com/five82/almanac/internal/calendar"
)

// Snapshot is the latest owner-supplied date as seen by the UI.
type Snapshot struct {
	Date        calendar.Date
	Version     uint64 // bumped on every change of Date
	LastUpdated time.Time
}

// Store carries the owner-supplied date from the clock watcher goroutine to
// the UI loop.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetDate records the owner date. It reports whether the value changed;
// repeated writes of the same date do not bump Version.
func (s *Store) SetDate(date calendar.Date) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if date == s.snapshot.Date {
		return false
	}
	s.snapshot.Date = date
	s.snapshot.Version++
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
