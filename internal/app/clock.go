package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/almanac/internal/calendar"
	"github.com/five82/almanac/internal/state"
)

const defaultClockInterval = 30 * time.Second

// StartClockWatcher launches a goroutine that publishes today's date into the
// store and republishes it when the day rolls over. It returns immediately.
func StartClockWatcher(ctx context.Context, store *state.Store, now func() time.Time, interval time.Duration, log *logrus.Entry) {
	if interval <= 0 {
		interval = defaultClockInterval
	}
	if now == nil {
		now = time.Now
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			publishToday(store, now, log)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func publishToday(store *state.Store, now func() time.Time, log *logrus.Entry) {
	today := calendar.Today(now)
	if store.SetDate(today) && log != nil {
		log.WithField("date", today.String()).Info("owner date changed")
	}
}
