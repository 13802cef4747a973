package ui

import "time"

const (
	// labelWidth is the column width of labels in the context panel.
	labelWidth = 16

	// contextPanelWidth is the outer width of the context panel.
	contextPanelWidth = 44

	// eventLogLimit is the number of notifications kept in memory.
	eventLogLimit = 500

	// chromeHeight is the number of lines used by header, panel and footer.
	chromeHeight = 16
)

// ownerPollInterval is how often the UI checks the store for owner updates.
const ownerPollInterval = time.Second
