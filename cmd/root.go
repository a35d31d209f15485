package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/koki-develop/imgascii/internal/ascii"
	"github.com/koki-develop/imgascii/internal/config"
	"github.com/koki-develop/imgascii/internal/output"
	"github.com/koki-develop/imgascii/internal/pipeline"
	"github.com/koki-develop/imgascii/internal/resize"
	"github.com/koki-develop/imgascii/internal/ui"
	"github.com/spf13/cobra"
)

const usage = "imgascii <image-path> [mode]"

var ErrUsage = errors.New("usage: " + usage)

func newRootCmd(stdout io.Writer) *cobra.Command {
	cfg := config.NewConfig()

	cmd := &cobra.Command{
		Use:   usage,
		Short: "Convert an image to ASCII art",
		Long: `imgascii decodes an image, shrinks it to fit the bounding box and writes
its ASCII-art rendering to a file.

Pass "-h" as the mode to skip every other row, which keeps proportions on
terminals whose character cells are about twice as tall as they are wide.
Any other mode renders every row. Arguments after the mode are ignored.

"-h" is also the shorthand of --half, so it selects half-height rendering
wherever it appears: "imgascii img.png x -h" renders half-height even
though the mode argument is "x".`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("%w: provide an image path", ErrUsage)
			}
			return nil
		},
		// Modes such as "--mode=hack" or "-x" are not flags and render fully.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var mode string
			if len(args) > 1 {
				mode = args[1]
			}
			return run(cfg, args[0], cfg.Mode(mode), stdout)
		},
	}

	// -h is the half-height shorthand, so help gets the long form only.
	cmd.Flags().Bool("help", false, "help for imgascii")
	cfg.RegisterFlags(cmd.Flags())
	if err := cfg.RegisterCompletions(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	return cmd
}

func run(cfg *config.Config, path string, mode ascii.Mode, stdout io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	resampler, err := resize.Lookup(cfg.Resampler)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(path, pipeline.Options{
		MaxWidth:     cfg.MaxWidth,
		MaxHeight:    cfg.MaxHeight,
		AllowUpscale: cfg.AllowUpscale,
		Mode:         mode,
		Resampler:    resampler,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	if err := output.Write(cfg.Output, res.Art); err != nil {
		return err
	}
	logger.Info("wrote ASCII art", "path", cfg.Output,
		"source", fmt.Sprintf("%dx%d", res.Source.Width, res.Source.Height),
		"target", fmt.Sprintf("%dx%d", res.Target.Width, res.Target.Height))

	fmt.Fprintf(stdout, "ASCII art in %s\n", cfg.Output)

	if cfg.Preview {
		return ui.Start(&ui.Option{Title: cfg.Output, Art: res.Art})
	}

	return nil
}

func Execute() {
	rootCmd := newRootCmd(os.Stdout)
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
		os.Exit(1)
	}
}
