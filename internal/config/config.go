package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/almanac/internal/calendar"
)

// Config captures the owner-side settings for the date coordinator and the
// terminal harness around it.
type Config struct {
	// Date is the owner-supplied initial date; zero means today.
	Date calendar.Date

	ShowTodayButton         bool
	DisableAutoDaySelection []calendar.UpdateSource

	NumberOfDays      int
	TimelineLeftInset int
	TodayBottomMargin int
	DisabledOpacity   float64

	LogLevel string
	LogFile  string
}

const (
	defaultConfigPath        = "~/.config/almanac/config.toml"
	defaultLogFile           = "~/.local/share/almanac/almanac.log"
	defaultLogLevel          = "info"
	defaultNumberOfDays      = 1
	defaultTimelineLeftInset = 72
	defaultDisabledOpacity   = 0.5
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ShowTodayButton:   true,
		NumberOfDays:      defaultNumberOfDays,
		TimelineLeftInset: defaultTimelineLeftInset,
		DisabledOpacity:   defaultDisabledOpacity,
		LogLevel:          defaultLogLevel,
		LogFile:           mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Date                    string   `toml:"date"`
		ShowTodayButton         *bool    `toml:"show_today_button"`
		DisableAutoDaySelection []string `toml:"disable_auto_day_selection"`
		NumberOfDays            int      `toml:"number_of_days"`
		TimelineLeftInset       int      `toml:"timeline_left_inset"`
		TodayBottomMargin       int      `toml:"today_bottom_margin"`
		DisabledOpacity         *float64 `toml:"disabled_opacity"`
		LogLevel                string   `toml:"log_level"`
		LogFile                 string   `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if date := strings.TrimSpace(raw.Date); date != "" {
		cfg.Date, err = calendar.ParseDate(date)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	if raw.ShowTodayButton != nil {
		cfg.ShowTodayButton = *raw.ShowTodayButton
	}
	for _, name := range raw.DisableAutoDaySelection {
		source, err := calendar.ParseUpdateSource(name)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: disable_auto_day_selection: %w", err)
		}
		cfg.DisableAutoDaySelection = append(cfg.DisableAutoDaySelection, source)
	}

	if raw.NumberOfDays > 0 {
		cfg.NumberOfDays = raw.NumberOfDays
	}
	if raw.TimelineLeftInset > 0 {
		cfg.TimelineLeftInset = raw.TimelineLeftInset
	}
	if raw.TodayBottomMargin > 0 {
		cfg.TodayBottomMargin = raw.TodayBottomMargin
	}
	if raw.DisabledOpacity != nil {
		cfg.DisabledOpacity = clampOpacity(*raw.DisabledOpacity)
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

func clampOpacity(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
