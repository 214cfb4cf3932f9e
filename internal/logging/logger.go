// Package logging builds per-component logrus loggers.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/kemilad/campusdash/internal/config"
)

var (
	mu      sync.Mutex
	base    = newBase()
	file    *os.File // log file opened by the last Setup, if any
	loggers = make(map[string]*logrus.Entry)
)

// Setup configures the shared logger. When toStderr is false (the TUI owns
// the terminal) output goes to cfg.File, or to the default state file.
// Call it once at startup, before any component logs; a later call swaps
// the output and closes the file opened by the previous one.
func Setup(cfg config.LogConfig, toStderr bool) error {
	var out io.Writer = io.Discard
	var f *os.File
	if toStderr {
		out = os.Stderr
	} else {
		path := cfg.File
		if path == "" {
			path = defaultLogPath()
		}
		if path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create log directory: %w", err)
			}
			var err error
			f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			out = f
		}
	}

	mu.Lock()
	defer mu.Unlock()
	// logrus serializes writes with SetOutput, so the old file is idle here.
	configure(base, out, cfg)
	if file != nil {
		_ = file.Close()
	}
	file = f
	return nil
}

// NewLogger returns the logger for component, creating it on first use.
func NewLogger(component string) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()
	if e, ok := loggers[component]; ok {
		return e
	}
	e := base.WithField("component", component)
	loggers[component] = e
	return e
}

func newBase() *logrus.Logger {
	l := logrus.New()
	configure(l, io.Discard, config.LogConfig{})
	return l
}

func configure(l *logrus.Logger, out io.Writer, cfg config.LogConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   out == os.Stderr && isatty.IsTerminal(os.Stderr.Fd()),
			DisableColors: out != os.Stderr,
		})
	}
	l.SetOutput(out)
}

func defaultLogPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "campusdash", "campusdash.log")
}
