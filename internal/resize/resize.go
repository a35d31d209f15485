package resize

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/koki-develop/imgascii/internal/pixel"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

var (
	ErrResample         = errors.New("failed to resize image")
	ErrUnknownResampler = errors.New("unknown resampler")
)

type Resampler interface {
	Resize(src *pixel.Buffer, dst Dimensions) (*pixel.Buffer, error)
}

// NFNT resamples with github.com/nfnt/resize.
type NFNT struct {
	Interp resize.InterpolationFunction
}

func (r *NFNT) Resize(src *pixel.Buffer, dst Dimensions) (*pixel.Buffer, error) {
	if err := check(src, dst); err != nil {
		return nil, err
	}
	img := resize.Resize(uint(dst.Width), uint(dst.Height), src.RGBA(), r.Interp)
	return fit(pixel.FromImage(img), dst)
}

// Draw resamples with a golang.org/x/image/draw scaler.
type Draw struct {
	Scaler draw.Scaler
}

func (r *Draw) Resize(src *pixel.Buffer, dst Dimensions) (*pixel.Buffer, error) {
	if err := check(src, dst); err != nil {
		return nil, err
	}
	out := image.NewRGBA(image.Rect(0, 0, dst.Width, dst.Height))
	img := src.RGBA()
	r.Scaler.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return fit(pixel.FromImage(out), dst)
}

func check(src *pixel.Buffer, dst Dimensions) error {
	if dst.IsZero() {
		return fmt.Errorf("%w: target size %dx%d has no area", ErrResample, dst.Width, dst.Height)
	}
	if src == nil || src.Width <= 0 || src.Height <= 0 {
		return fmt.Errorf("%w: source image is empty", ErrResample)
	}
	return nil
}

func fit(buf *pixel.Buffer, dst Dimensions) (*pixel.Buffer, error) {
	if buf.Width != dst.Width || buf.Height != dst.Height {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrResample, buf.Width, buf.Height, dst.Width, dst.Height)
	}
	return buf, nil
}

const DefaultResampler = "bilinear"

var resamplers = map[string]func() Resampler{
	"bilinear":        func() Resampler { return &NFNT{Interp: resize.Bilinear} },
	"nearest":         func() Resampler { return &NFNT{Interp: resize.NearestNeighbor} },
	"lanczos":         func() Resampler { return &NFNT{Interp: resize.Lanczos3} },
	"catmullrom":      func() Resampler { return &Draw{Scaler: draw.CatmullRom} },
	"approx-bilinear": func() Resampler { return &Draw{Scaler: draw.ApproxBiLinear} },
}

// Names lists the registered resampler names in sorted order.
func Names() []string {
	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(name string) (Resampler, error) {
	newResampler, ok := resamplers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (one of: %s)", ErrUnknownResampler, name, strings.Join(Names(), ", "))
	}
	return newResampler(), nil
}
