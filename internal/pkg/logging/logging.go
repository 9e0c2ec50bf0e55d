// Package logging configures the process-wide structured logger.
// Log output is JSON on stdout plus a size-rotated file, so stage events from
// the fulfilment pipeline survive restarts and stay machine-parseable.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once sync.Once
	base *slog.Logger
)

// Init configures the global logger exactly once and returns it.
// Call this in main(): logging.Init("fulfilment", "./logs/app.log").
// Subsequent calls return the logger configured by the first call.
func Init(component, filePath string) *slog.Logger {
	once.Do(func() {
		_ = os.MkdirAll(filepath.Dir(filePath), 0o755)

		rot := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   false,
		}
		mw := io.MultiWriter(os.Stdout, rot)

		h := slog.NewJSONHandler(mw, &slog.HandlerOptions{Level: slog.LevelInfo})
		base = slog.New(h).With("component", component)
	})
	return base
}

// L returns the configured logger, initializing a stderr-only fallback when
// Init has not been called (keeps tests and ad-hoc tools working).
func L() *slog.Logger {
	if base == nil {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return base
}
