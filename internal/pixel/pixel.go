package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Channels is the number of bytes per pixel in a Buffer.
const Channels = 3

var ErrDecode = errors.New("failed to decode image")

// Buffer holds interleaved RGB triples in row-major order.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
}

// New allocates a zeroed buffer of w x h pixels.
func New(w, h int) *Buffer {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("pixel: negative size %dx%d", w, h))
	}
	return &Buffer{
		Pix:    make([]byte, w*h*Channels),
		Width:  w,
		Height: h,
	}
}

// Wrap uses pix as the backing store of a w x h buffer. It panics when the
// length of pix does not match.
func Wrap(pix []byte, w, h int) *Buffer {
	if w < 0 || h < 0 || len(pix) != w*h*Channels {
		panic(fmt.Sprintf("pixel: buffer of %d bytes cannot hold %dx%d RGB", len(pix), w, h))
	}
	return &Buffer{Pix: pix, Width: w, Height: h}
}

func (b *Buffer) Stride() int {
	return b.Width * Channels
}

func (b *Buffer) At(x, y int) (r, g, bl uint8) {
	i := y*b.Stride() + x*Channels
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

func (b *Buffer) Set(x, y int, r, g, bl uint8) {
	i := y*b.Stride() + x*Channels
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

// FromImage flattens img into an RGB buffer. Alpha is discarded without
// premultiplying, so translucent pixels keep their straight color.
func FromImage(img image.Image) *Buffer {
	sz := img.Bounds()
	buf := New(sz.Dx(), sz.Dy())
	for y := 0; y < sz.Dy(); y++ {
		for x := 0; x < sz.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(sz.Min.X+x, sz.Min.Y+y)).(color.NRGBA)
			buf.Set(x, y, c.R, c.G, c.B)
		}
	}
	return buf
}

// RGBA converts the buffer to an opaque *image.RGBA.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			r, g, bl := b.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 0xff})
		}
	}
	return img
}

// Load decodes the image at path into an RGB buffer.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return FromImage(img), nil
}
