package dry

import (
	"image/color"

	icolor "github.com/gogpu/dry/internal/color"
)

// FromColor converts any color.Color to a Sample, undoing the
// premultiplication that color.Color.RGBA applies. Gray models come out
// with equal R, G and B. A nil color is Transparent.
func FromColor(c color.Color) Sample {
	if c == nil {
		return Transparent
	}
	if s, ok := c.(Sample); ok {
		return s
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	fa := float64(a)
	return Sample{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 0xFFFF,
	}
}

// Extractor is implemented by adapters around platform color handles that
// cannot be expressed as a color.Color.
type Extractor interface {
	// RGBAComponents returns unpremultiplied channels in [0, 1].
	// ok is false when the handle is not in an RGB-compatible space.
	RGBAComponents() (r, g, b, a float64, ok bool)
}

// GrayExtractor is an optional interface for handles in a single-channel
// gray space.
type GrayExtractor interface {
	WhiteComponents() (w, a float64, ok bool)
}

// Extract reads a sample through an adapter. It tries RGBA first; if that
// fails and src also implements GrayExtractor, the white channel is copied
// into R, G and B. The result is clamped to [0, 1].
func Extract(src Extractor) (Sample, bool) {
	if src == nil {
		return Sample{}, false
	}
	if r, g, b, a, ok := src.RGBAComponents(); ok {
		return fromUnit(icolor.ClampUnit(icolor.Unit{R: r, G: g, B: b, A: a})), true
	}
	gx, ok := src.(GrayExtractor)
	if !ok {
		return Sample{}, false
	}
	w, a, ok := gx.WhiteComponents()
	if !ok {
		return Sample{}, false
	}
	Logger().Debug("dry: gray fallback in Extract", "white", w, "alpha", a)
	return fromUnit(icolor.ClampUnit(icolor.Unit{R: w, G: w, B: w, A: a})), true
}
