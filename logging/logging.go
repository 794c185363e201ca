// Package logging creates the structured loggers used by the command
// line tool and the experiment runner.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the output format of a logger
type Format string

// Available formats
const (
	Text Format = "text"
	JSON Format = "json"
)

// Config configures a logger
type Config struct {
	Level  string    // debug, info, warn or error
	Format Format    // text or json
	Writer io.Writer // defaults to os.Stderr
}

// ParseLevel returns the slog.Level with the given name, ignoring case
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("parseLevel: unknown log level %q",
		level)
}

// New returns a new logger configured by c
func New(c Config) (*slog.Logger, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	w := c.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	switch Format(strings.ToLower(string(c.Format))) {
	case "", Text:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case JSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("new: unknown log format %q", c.Format)
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard,
		&slog.HandlerOptions{Level: slog.LevelError + 1}))
}
