package dry

import (
	"image/color"

	icolor "github.com/gogpu/dry/internal/color"
)

// Sample is a color with red, green, blue and alpha channels.
// Each channel is in the range [0, 1] and is not premultiplied.
//
// Sample implements color.Color, so it can be passed to any image API.
type Sample struct {
	R, G, B, A float64
}

// RGB creates an opaque sample.
func RGB(r, g, b float64) Sample {
	return Sample{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a sample from all four channels.
func RGBA(r, g, b, a float64) Sample {
	return Sample{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color. The returned values are alpha-premultiplied
// and scaled to [0, 0xFFFF].
func (s Sample) RGBA() (r, g, b, a uint32) {
	c := s.Clamped()
	a = uint32(c.A*0xFFFF + 0.5)
	r = uint32(c.R*c.A*0xFFFF + 0.5)
	g = uint32(c.G*c.A*0xFFFF + 0.5)
	b = uint32(c.B*c.A*0xFFFF + 0.5)
	return r, g, b, a
}

// NRGBA quantizes the sample to 8 bits per channel.
func (s Sample) NRGBA() color.NRGBA {
	b := icolor.ToBytes(s.unit())
	return color.NRGBA{R: b.R, G: b.G, B: b.B, A: b.A}
}

// Clamped returns the sample with every channel restricted to [0, 1].
func (s Sample) Clamped() Sample {
	return fromUnit(icolor.ClampUnit(s.unit()))
}

// IsOpaque reports whether alpha quantizes to 255.
func (s Sample) IsOpaque() bool {
	return icolor.Quantize(s.A) == 255
}

// Premultiply returns the sample with RGB scaled by alpha.
func (s Sample) Premultiply() Sample {
	return Sample{R: s.R * s.A, G: s.G * s.A, B: s.B * s.A, A: s.A}
}

// WithAlpha returns a copy of s with alpha replaced.
func (s Sample) WithAlpha(a float64) Sample {
	s.A = a
	return s
}

func (s Sample) unit() icolor.Unit {
	return icolor.Unit{R: s.R, G: s.G, B: s.B, A: s.A}
}

func fromUnit(u icolor.Unit) Sample {
	return Sample{R: u.R, G: u.G, B: u.B, A: u.A}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)
