package dry

// Display reports the logical size of a screen in points.
// Implementations wrap whatever the host platform exposes.
type Display interface {
	Bounds() (width, height float64)
}

// ScreenWidth returns the width of d, or 0 for a nil display.
func ScreenWidth(d Display) float64 {
	if d == nil {
		return 0
	}
	w, _ := d.Bounds()
	return w
}

// ScreenHeight returns the height of d, or 0 for a nil display.
func ScreenHeight(d Display) float64 {
	if d == nil {
		return 0
	}
	_, h := d.Bounds()
	return h
}

// StaticDisplay is a Display with fixed dimensions, useful for headless
// rendering and tests.
type StaticDisplay struct {
	Width, Height float64
	// Scale is the number of pixels per point. Values <= 0 mean 1.
	Scale float64
}

// Bounds implements Display.
func (d StaticDisplay) Bounds() (width, height float64) {
	return d.Width, d.Height
}

// PixelSize returns the bounds multiplied by the scale factor.
func (d StaticDisplay) PixelSize() (width, height float64) {
	s := d.Scale
	if s <= 0 {
		s = 1
	}
	return d.Width * s, d.Height * s
}
