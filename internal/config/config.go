// Package config holds the settings of a single imgascii run and binds them
// to command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/koki-develop/imgascii/internal/ascii"
	"github.com/koki-develop/imgascii/internal/log"
	"github.com/koki-develop/imgascii/internal/output"
	"github.com/koki-develop/imgascii/internal/resize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	DefaultMaxWidth  = 200
	DefaultMaxHeight = 200
)

var ErrInvalidArgument = errors.New("invalid argument")

// Config holds the values of every imgascii flag.
//
// Box sizes are passed to the planner as-is: non-positive values are not
// rejected here and end the run with a resample error instead.
type Config struct {
	Output       string
	MaxWidth     int
	MaxHeight    int
	AllowUpscale bool
	Half         bool
	Resampler    string
	Preview      bool

	Log *log.Config
}

func NewConfig() *Config {
	return &Config{
		Output:    output.DefaultPath,
		MaxWidth:  DefaultMaxWidth,
		MaxHeight: DefaultMaxHeight,
		Resampler: resize.DefaultResampler,
		Log:       log.NewConfig(),
	}
}

func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, "output", "o", c.Output, "file to write the ASCII art to")
	flags.IntVar(&c.MaxWidth, "max-width", c.MaxWidth, "maximum width of the art in characters")
	flags.IntVar(&c.MaxHeight, "max-height", c.MaxHeight, "maximum height of the art in rows, before --half")
	flags.BoolVar(&c.AllowUpscale, "upscale", c.AllowUpscale, "allow images smaller than the box to be enlarged")
	flags.BoolVarP(&c.Half, "half", "h", c.Half, "skip every other row to offset tall terminal cells")
	flags.StringVar(&c.Resampler, "resampler", c.Resampler,
		fmt.Sprintf("resampling kernel, one of: %s", strings.Join(resize.Names(), ", ")))
	flags.BoolVar(&c.Preview, "preview", c.Preview, "show the art in a scrollable terminal view after writing it")
	c.Log.RegisterFlags(flags)
}

func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc("resampler",
		cobra.FixedCompletions(resize.Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering resampler completion: %w", err)
	}

	return c.Log.RegisterCompletions(cmd)
}

func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidArgument)
	}
	if _, err := resize.Lookup(c.Resampler); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

// Mode resolves the render mode from the optional positional mode argument
// and the --half flag.
func (c *Config) Mode(arg string) ascii.Mode {
	if c.Half || ascii.Mode(arg) == ascii.ModeHalf {
		return ascii.ModeHalf
	}
	return ascii.ModeFull
}
