// Package config loads Almanac's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/almanac/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or empty, keep the defaults
//
// # TOML Format
//
//	date = "2024-03-15"                 # owner-supplied initial date; empty = today
//	show_today_button = true
//	disable_auto_day_selection = ["WEEK_SCROLL", "MONTH_SCROLL"]
//	number_of_days = 1
//	timeline_left_inset = 72
//	today_bottom_margin = 0
//	disabled_opacity = 0.5              # clamped to [0, 1]
//	log_level = "info"
//	log_file = "~/.local/share/almanac/almanac.log"
//
// Source names are matched case-insensitively against the update sources in
// package calendar.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors, invalid dates and unknown source names
//
// Missing config files are NOT an error.
package config
