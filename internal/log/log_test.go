package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koki-develop/imgascii/internal/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    slog.Level
		expectError bool
	}{
		"error level":      {input: "error", expected: slog.LevelError},
		"warn level":       {input: "warn", expected: slog.LevelWarn},
		"warning alias":    {input: "warning", expected: slog.LevelWarn},
		"info level":       {input: "info", expected: slog.LevelInfo},
		"debug level":      {input: "debug", expected: slog.LevelDebug},
		"case insensitive": {input: "DEBUG", expected: slog.LevelDebug},
		"unknown level":    {input: "loud", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lvl, err := log.ParseLevel(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, lvl)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    log.Format
		expectError bool
	}{
		"json format":      {input: "json", expected: log.FormatJSON},
		"logfmt format":    {input: "logfmt", expected: log.FormatLogfmt},
		"text format":      {input: "text", expected: log.FormatText},
		"case insensitive": {input: "JSON", expected: log.FormatJSON},
		"unknown format":   {input: "yaml", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := log.ParseFormat(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrUnknownLogFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestNewHandlerJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(log.NewHandler(&buf, slog.LevelInfo, log.FormatJSON))

	logger.Debug("hidden")
	logger.Info("rendered", slog.Int("rows", 100))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rendered", entry["msg"])
	assert.InDelta(t, 100, entry["rows"], 0)
	assert.Contains(t, entry, slog.SourceKey)
}

func TestNewHandlerText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(log.NewHandler(&buf, slog.LevelWarn, log.FormatText))

	logger.Info("hidden")
	logger.Warn("careful", "path", "output.txt")

	assert.Contains(t, buf.String(), "msg=careful")
	assert.Contains(t, buf.String(), "path=output.txt")
	assert.NotContains(t, buf.String(), "hidden")
	assert.NotContains(t, buf.String(), "source=")
}

func TestConfig(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	require.NoError(t, cmd.Flags().Parse([]string{"--log-level", "debug", "--log-format", "json"}))
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	_, err := cfg.NewLogger(&bytes.Buffer{})
	require.NoError(t, err)

	cfg.Level = "nope"
	_, err = cfg.NewHandler(&bytes.Buffer{})
	require.ErrorIs(t, err, log.ErrInvalidArgument)
	require.ErrorIs(t, err, log.ErrUnknownLogLevel)
}
