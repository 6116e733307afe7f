package dry

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that Sample implements color.Color.
var _ color.Color = Sample{}

func TestSample_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Sample
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 0xFFFF},
		{"opaque white", White, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{"opaque red", Red, 0xFFFF, 0, 0, 0xFFFF},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"50% alpha red", RGBA(1, 0, 0, 0.5), 0x8000, 0, 0, 0x8000},
		{"out of range clamps", RGBA(2, -1, 0.5, 1), 0xFFFF, 0, 0x8000, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestSample_UsableAsImageColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, MustParseHex("#3498DB"))
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestNRGBA(t *testing.T) {
	got := RGBA(1, 0.5, 0, 128.0/255.0).NRGBA()
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 128}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestClamped(t *testing.T) {
	got := Sample{R: -0.5, G: 1.5, B: 0.25, A: math.NaN()}.Clamped()
	want := Sample{R: 0, G: 1, B: 0.25, A: 0}
	if got != want {
		t.Errorf("Clamped() = %+v, want %+v", got, want)
	}
}

func TestPremultiplyAndWithAlpha(t *testing.T) {
	c := RGB(0.8, 0.4, 0.2).WithAlpha(0.5)
	if c.A != 0.5 || c.R != 0.8 {
		t.Fatalf("WithAlpha = %+v", c)
	}
	p := c.Premultiply()
	if !sampleNear(p, Sample{R: 0.4, G: 0.2, B: 0.1, A: 0.5}, 1e-12) {
		t.Errorf("Premultiply() = %+v", p)
	}
}

func TestIsOpaque(t *testing.T) {
	if !White.IsOpaque() {
		t.Error("White not opaque")
	}
	if RGBA(0, 0, 0, 0.99).IsOpaque() {
		t.Error("alpha 0.99 reported opaque")
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func sampleNear(a, b Sample, eps float64) bool {
	return absDiff(a.R, b.R) <= eps && absDiff(a.G, b.G) <= eps &&
		absDiff(a.B, b.B) <= eps && absDiff(a.A, b.A) <= eps
}
