// Package logger holds the process-wide slog logger. Until Setup runs every
// record is discarded, so packages can log unconditionally.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects where records go. An empty Root writes no file; Echo, when
// set, receives a copy of every record (serve uses stderr).
type Config struct {
	Root  string
	Debug bool
	Level slog.Level
	Echo  io.Writer
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Setup installs the logger described by cfg and returns a cleanup that
// closes the file and restores the discard logger. A previous Setup is
// closed first.
func Setup(cfg Config) (func() error, error) {
	_ = reset()

	var sinks []io.Writer
	var f *os.File
	var path string

	if cfg.Root != "" {
		dir := filepath.Join(filepath.Clean(cfg.Root), ".calckit", "logs")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}

		path = filepath.Join(dir, "calckit.log")
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, f)
	}
	if cfg.Echo != nil {
		sinks = append(sinks, cfg.Echo)
	}
	if len(sinks) == 0 {
		return reset, nil
	}

	level := cfg.Level
	if cfg.Debug {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(io.MultiWriter(sinks...), &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "level", level.String())

	return reset, nil
}

func reset() error {
	mu.Lock()
	defer mu.Unlock()

	var cerr error
	if logFile != nil {
		cerr = logFile.Close()
	}
	logFile = nil
	logPath = ""
	global = discard()
	return cerr
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the log file in use, empty when logging only to Echo or nowhere.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}
