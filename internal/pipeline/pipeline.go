package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/koki-develop/imgascii/internal/ascii"
	"github.com/koki-develop/imgascii/internal/pixel"
	"github.com/koki-develop/imgascii/internal/resize"
)

// Options controls a single image-to-ASCII conversion.
type Options struct {
	MaxWidth     int
	MaxHeight    int
	AllowUpscale bool
	Mode         ascii.Mode

	Resampler resize.Resampler // defaults to bilinear
	Renderer  *ascii.Renderer  // defaults to the standard ramp
	Logger    *slog.Logger     // defaults to slog.Default()
}

// Result holds the rendered art and the sizes involved in producing it.
type Result struct {
	Art    string
	Source resize.Dimensions
	Target resize.Dimensions
}

// Run executes load → plan → resample → render for the image at path.
func Run(path string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// 1. Decode
	src, err := pixel.Load(path)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	srcDims := resize.Dimensions{Width: src.Width, Height: src.Height}
	logger.Debug("decoded image", slog.String("path", path), slog.Int("width", src.Width), slog.Int("height", src.Height))

	art, target, err := Convert(src, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("rendered art", slog.Int("width", target.Width), slog.Int("height", target.Height),
		slog.Int("bytes", len(art)), slog.String("mode", string(opts.Mode)))

	return &Result{
		Art:    art,
		Source: srcDims,
		Target: target,
	}, nil
}

// Convert plans, resamples and renders an already decoded buffer.
func Convert(src *pixel.Buffer, opts Options) (string, resize.Dimensions, error) {
	resampler := opts.Resampler
	if resampler == nil {
		var err error
		if resampler, err = resize.Lookup(resize.DefaultResampler); err != nil {
			return "", resize.Dimensions{}, err
		}
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = ascii.NewRenderer()
	}

	// 2. Plan
	target := resize.Plan(src.Width, src.Height, opts.MaxWidth, opts.MaxHeight, opts.AllowUpscale)

	// 3. Resample. A zero plan fails here, so nothing is rendered.
	resized, err := resampler.Resize(src, target)
	if err != nil {
		return "", target, fmt.Errorf("resize: %w", err)
	}

	// 4. Render
	return renderer.RenderBuffer(resized, opts.Mode), target, nil
}
