// Package logging builds the slog loggers handed to all components.
// Loggers are constructed once per invocation and passed down explicitly;
// nothing in this program reads or mutates the global slog default.
//
// Console output always goes to stderr so that tables and JSON on stdout stay
// machine-readable. An optional log file receives a copy of everything.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel converts a config/flag level string into a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// New creates a text logger at the given level. When logFile is non-empty,
// log output is duplicated into that file (parent directories are created).
// The returned closer flushes and closes the file sink and is safe to call
// even when no file is in use.
func New(level slog.Level, logFile string) (*slog.Logger, func(), error) {
	var sink io.Writer = os.Stderr
	closer := func() {}

	if logFile != "" {
		if dir := filepath.Dir(logFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("logging.New: %w", err)
			}
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging.New: %w", err)
		}

		sink = io.MultiWriter(os.Stderr, file)
		closer = func() {
			_ = file.Close()
		}
	}

	logger := slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{
		Level: level,
	}))

	return logger, closer, nil
}
