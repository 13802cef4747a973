// Package logging configures the logrus loggers used across Almanac.
//
// The terminal belongs to the TUI, so output goes to a log file rather than
// stderr. Each component gets its own *logrus.Entry tagged with a
// "component" field.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the configured level when set.
const LevelEnv = "ALMANAC_LOG_LEVEL"

// Options control the shared logger.
type Options struct {
	Level   string // "debug", "info", ...; empty means info
	File    string // empty or "-" discards output
	Verbose bool   // forces debug
}

var (
	mu      sync.Mutex
	root    = newDiscardLogger()
	closer  io.Closer
	entries = make(map[string]*logrus.Entry)
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup configures the shared logger. It returns a function that closes the
// log file.
func Setup(opts Options) (func() error, error) {
	mu.Lock()
	defer mu.Unlock()

	level, err := resolveLevel(opts)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	var file *os.File
	path := strings.TrimSpace(opts.File)
	if path == "" || path == "-" {
		l.SetOutput(io.Discard)
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.SetOutput(file)
	}

	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	if file != nil {
		closer = file
	}
	root = l
	entries = make(map[string]*logrus.Entry)

	return func() error {
		mu.Lock()
		defer mu.Unlock()
		if closer == nil {
			return nil
		}
		err := closer.Close()
		closer = nil
		root.SetOutput(io.Discard)
		return err
	}, nil
}

func resolveLevel(opts Options) (logrus.Level, error) {
	if opts.Verbose {
		return logrus.DebugLevel, nil
	}
	name := strings.TrimSpace(os.Getenv(LevelEnv))
	if name == "" {
		name = strings.TrimSpace(opts.Level)
	}
	if name == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

// For returns the logger for a component. Entries are cached until the next
// Setup call.
func For(component string) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()

	if e, ok := entries[component]; ok {
		return e
	}
	e := root.WithField("component", component)
	entries[component] = e
	return e
}
