package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Config holds CLI flag values for log configuration.
type Config struct {
	Level  string
	Format string
}

// NewConfig returns a [Config] with the defaults used when no flags are
// registered: warnings and errors only, in text format.
func NewConfig() *Config {
	return &Config{
		Level:  "warn",
		Format: string(FormatText),
	}
}

// RegisterFlags adds --log-level and --log-format to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, "log-level", c.Level,
		fmt.Sprintf("log level, one of: %s", strings.Join(AllLevels(), ", ")))
	flags.StringVar(&c.Format, "log-format", c.Format,
		fmt.Sprintf("log format, one of: %s", strings.Join(AllFormats(), ", ")))
}

// RegisterCompletions registers shell completions for the log flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(AllLevels(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering log-level completion: %w", err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(AllFormats(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering log-format completion: %w", err)
	}

	return nil
}

// NewHandler creates a handler writing to w from the configured strings.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}

// NewLogger is a shorthand for slog.New(c.NewHandler(w)).
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	h, err := c.NewHandler(w)
	if err != nil {
		return nil, err
	}

	return slog.New(h), nil
}
