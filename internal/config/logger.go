package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger builds a logger from the log section. Without a file the logger
// discards everything, since local play owns the terminal. The returned
// close function releases the log file.
func (l Log) Logger(prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("config: log level: %w", err)
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if l.File != "" {
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("config: open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// ServerLogger builds the SSH server logger, which always writes to stderr.
func (l Log) ServerLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-ssh",
		Level:           level,
	}), nil
}
