package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/almanac/internal/calendar"
	"github.com/five82/almanac/internal/config"
	"github.com/five82/almanac/internal/logging"
	"github.com/five82/almanac/internal/prefs"
	"github.com/five82/almanac/internal/state"
	"github.com/five82/almanac/internal/ui"
)

// Options configure the Almanac application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/almanac/prefs.toml
	Date       string // overrides the config date; YYYY-MM-DD
	ThemeName  string // overrides the saved theme
	Verbose    bool

	NoTodayButton bool
}

// Settings is the resolved configuration handed to the UI.
type Settings struct {
	Config     config.Config
	Prefs      prefs.Prefs
	PinnedDate bool // true when the owner date came from config or flags
	Initial    calendar.Date
}

// Resolve merges config, prefs and command-line overrides.
func Resolve(opts Options, now func() time.Time) (Settings, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return Settings{}, fmt.Errorf("load config: %w", err)
	}

	if strings.TrimSpace(opts.Date) != "" {
		cfg.Date, err = calendar.ParseDate(opts.Date)
		if err != nil {
			return Settings{}, fmt.Errorf("--date: %w", err)
		}
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	if name := strings.TrimSpace(opts.ThemeName); name != "" {
		userPrefs.Theme = name
	}
	if opts.NoTodayButton || userPrefs.HideTodayButton {
		cfg.ShowTodayButton = false
	}

	s := Settings{Config: cfg, Prefs: userPrefs, PinnedDate: !cfg.Date.IsZero()}
	s.Initial = cfg.Date
	if s.Initial.IsZero() {
		s.Initial = calendar.Today(now)
	}
	return s, nil
}

// Run boots the Almanac TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	settings, err := Resolve(opts, time.Now)
	if err != nil {
		return err
	}

	closeLog, err := logging.Setup(logging.Options{
		Level:   settings.Config.LogLevel,
		File:    settings.Config.LogFile,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	log := logging.For("app")
	log.WithFields(logrus.Fields{
		"initial": settings.Initial.String(),
		"pinned":  settings.PinnedDate,
		"theme":   settings.Prefs.Theme,
	}).Info("starting")

	store := &state.Store{}
	store.SetDate(settings.Initial)

	// A pinned owner date never moves; otherwise the owner follows the clock.
	if !settings.PinnedDate {
		StartClockWatcher(ctx, store, time.Now, defaultClockInterval, logging.For("clock"))
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cfg := settings.Config
	return ui.Run(ctx, ui.Options{
		Store:                   store,
		Initial:                 settings.Initial,
		ShowTodayButton:         cfg.ShowTodayButton,
		DisableAutoDaySelection: cfg.DisableAutoDaySelection,
		NumberOfDays:            cfg.NumberOfDays,
		TimelineLeftInset:       cfg.TimelineLeftInset,
		TodayBottomMargin:       cfg.TodayBottomMargin,
		DisabledOpacity:         cfg.DisabledOpacity,
		ThemeName:               settings.Prefs.Theme,
		Prefs:                   settings.Prefs,
		PrefsPath:               prefsPath,
		Logger:                  logging.For("coordinator"),
	})
}
