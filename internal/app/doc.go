// Package app is the composition root for Almanac.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> Resolve()              config + prefs + flag overrides
//	       ├─────> logging.Setup()        logrus to the configured file
//	       ├─────> state.Store{}          owner date shared with the UI
//	       ├─────> StartClockWatcher()    only when the date is not pinned
//	       └─────> ui.Run()               Bubble Tea program (blocks)
//
// The owner-supplied date is either pinned (config `date` or --date) or
// follows the wall clock. The clock watcher only republishes when the day
// changes, so the coordinator sees an owner update at most once per day.
//
// Fatal errors (returned from Run): invalid config, invalid --date, an
// unusable log file. Nothing after startup is fatal.
package app
