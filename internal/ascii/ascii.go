package ascii

import (
	"fmt"
	"strings"

	"github.com/koki-develop/imgascii/internal/pixel"
)

// DefaultRamp orders glyphs from densest to lightest.
const DefaultRamp = "#@%*+=-:. "

type Mode string

const (
	ModeFull Mode = ""
	// ModeHalf drops every odd row to make up for terminal cells being
	// about twice as tall as they are wide.
	ModeHalf Mode = "-h"
)

func (m Mode) skips(y int) bool {
	return m == ModeHalf && y%2 == 1
}

type Renderer struct {
	ramp string
}

type Option func(*Renderer)

func WithRamp(ramp string) Option {
	return func(r *Renderer) {
		r.ramp = ramp
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{ramp: DefaultRamp}
	for _, opt := range opts {
		opt(r)
	}
	if len(r.ramp) == 0 {
		panic("ascii: empty glyph ramp")
	}
	return r
}

// Glyph maps an RGB triple to a ramp glyph using the unweighted channel mean.
func (r *Renderer) Glyph(red, green, blue uint8) byte {
	gray := (int(red) + int(green) + int(blue)) / 3
	return r.ramp[gray*(len(r.ramp)-1)/255]
}

// Render converts the top-left width x height region of pix, whose rows are
// rowStride pixels wide, into newline-terminated rows of glyphs. Rows skipped
// by mode produce no output at all.
func (r *Renderer) Render(pix []byte, width, height, rowStride int, mode Mode) string {
	if width > rowStride {
		panic(fmt.Sprintf("ascii: width %d exceeds row stride %d", width, rowStride))
	}
	if height > 0 && len(pix) < rowStride*height*pixel.Channels {
		panic(fmt.Sprintf("ascii: %d bytes cannot hold %dx%d RGB", len(pix), rowStride, height))
	}

	b := new(strings.Builder)
	b.Grow((width + 1) * height)
	for y := 0; y < height; y++ {
		if mode.skips(y) {
			continue
		}
		row := pix[y*rowStride*pixel.Channels:]
		for x := 0; x < width; x++ {
			i := x * pixel.Channels
			b.WriteByte(r.Glyph(row[i], row[i+1], row[i+2]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderBuffer renders every column of buf.
func (r *Renderer) RenderBuffer(buf *pixel.Buffer, mode Mode) string {
	return r.Render(buf.Pix, buf.Width, buf.Height, buf.Width, mode)
}

// Lines splits rendered art back into rows without their terminators.
func Lines(art string) []string {
	if art == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(art, "\n"), "\n")
}
