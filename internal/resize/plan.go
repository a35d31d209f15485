package resize

import "math"

// Dimensions is a target size in pixels. The zero value means no resize is
// possible.
type Dimensions struct {
	Width  int
	Height int
}

// IsZero reports whether d has no area. Besides the zero value this covers
// plans where rounding left one axis at 0, such as 0x1.
func (d Dimensions) IsZero() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Plan fits ow x oh inside mw x mh keeping the aspect ratio. Width is fitted
// first, height is the fallback when the width fit overflows the box.
//
// Without allowUpscale each axis is clamped to the original size on its own,
// which can skew the ratio when only one axis is clamped.
// Values are rounded half away from zero.
func Plan(ow, oh, mw, mh int, allowUpscale bool) Dimensions {
	if ow <= 0 || oh <= 0 || mw <= 0 || mh <= 0 {
		return Dimensions{}
	}

	aspect := float64(ow) / float64(oh)
	w := float64(mw)
	h := w / aspect

	if h > float64(mh) {
		h = float64(mh)
		w = h * aspect
	}

	if !allowUpscale {
		w = math.Min(w, float64(ow))
		h = math.Min(h, float64(oh))
	}

	return Dimensions{
		Width:  int(math.Round(w)),
		Height: int(math.Round(h)),
	}
}
