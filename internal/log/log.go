// Package log builds [log/slog] handlers from level and format strings.
//
// Use [Config] to bind the level and format to CLI flags:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format with source locations.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs logfmt without source locations.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// AllLevels returns the accepted level names, most verbose first.
func AllLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// AllFormats returns the accepted format names.
func AllFormats() []string {
	return []string{string(FormatText), string(FormatLogfmt), string(FormatJSON)}
}

// ParseLevel parses a case-insensitive level name. "warning" is accepted as
// an alias for "warn".
func ParseLevel(level string) (slog.Level, error) {
	level = strings.ToLower(level)
	if level == "warning" {
		level = "warn"
	}

	lvl, ok := levels[level]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
	}

	return lvl, nil
}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(format string) (Format, error) {
	logFmt := Format(strings.ToLower(format))
	if !slices.Contains(AllFormats(), string(logFmt)) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
	}

	return logFmt, nil
}

// NewHandler creates a [slog.Handler] writing to w.
func NewHandler(w io.Writer, lvl slog.Level, logFmt Format) slog.Handler {
	switch logFmt {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{AddSource: true, Level: lvl})
	case FormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: true, Level: lvl})
	}

	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
}

// NewHandlerFromStrings parses level and format and creates a handler.
func NewHandlerFromStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	logFmt, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, logFmt), nil
}
