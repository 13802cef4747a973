// Package state hands the owner-supplied date from the clock watcher to the UI.
//
// # Architecture
//
//	Producer (clock watcher):        Consumer (UI tick):
//	┌──────────────────┐            ┌───────────────────────────┐
//	│ calendar.Today() │            │ store.Snapshot()          │
//	│      ↓           │            │      ↓                    │
//	│ store.SetDate()  │───────────→│ Version changed?          │
//	│      ↓           │  (mutex)   │      ↓                    │
//	│  wait for tick   │            │ coordinator.SyncExternal… │
//	└──────────────────┘            └───────────────────────────┘
//
// The coordinator itself is single-threaded and lives on the Bubble Tea
// update goroutine; Store is the only value shared across goroutines.
//
// Version increases only when the date actually changes, so consumers can
// compare versions instead of dates to detect owner updates.
package state
