package dry

import (
	"image"
	"image/color"
	"image/draw"
	"sync"
	"testing"
)

func uniform(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestBinding(t *testing.T) {
	var b Binding
	if b.Get() {
		t.Error("zero Binding is true")
	}
	b.Set(true)
	if !b.Get() {
		t.Error("Set(true) not stored")
	}
	if b.Toggle() {
		t.Error("Toggle from true returned true")
	}
	if !NewBinding(true).Get() {
		t.Error("NewBinding(true).Get() = false")
	}
}

func TestBindingConcurrentToggle(t *testing.T) {
	b := NewBinding(false)
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Toggle()
		}()
	}
	wg.Wait()
	if b.Get() {
		t.Error("even number of toggles left binding true")
	}
}

func TestConditionalOverlayOpacity(t *testing.T) {
	b := NewBinding(false)
	o := NewConditionalOverlay(b, nil)
	if o.Opacity() != 0 || o.Visible() {
		t.Errorf("hidden overlay opacity = %v", o.Opacity())
	}
	b.Set(true)
	if o.Opacity() != 1 || !o.Visible() {
		t.Errorf("visible overlay opacity = %v", o.Opacity())
	}
	if NewConditionalOverlay(nil, nil).Opacity() != 0 {
		t.Error("nil binding should hide the overlay")
	}
}

func TestConditionalOverlayCompose(t *testing.T) {
	base := uniform(4, 4, Blue)
	content := uniform(2, 2, Red)
	visible := NewBinding(false)
	o := NewConditionalOverlay(visible, content)

	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	o.Compose(dst, base)
	if got := FromColor(dst.At(3, 3)).Hex(); got != "#0000FF" {
		t.Errorf("hidden overlay: pixel = %s, want base #0000FF", got)
	}

	visible.Set(true)
	o.Compose(dst, base)
	for _, p := range []image.Point{{0, 0}, {3, 3}, {1, 2}} {
		if got := FromColor(dst.At(p.X, p.Y)).Hex(); got != "#FF0000" {
			t.Errorf("visible overlay: pixel %v = %s, want #FF0000", p, got)
		}
	}

	visible.Set(false)
	o.Compose(dst, base)
	if got := FromColor(dst.At(0, 0)).Hex(); got != "#0000FF" {
		t.Errorf("re-hidden overlay: pixel = %s, want #0000FF", got)
	}
}

func TestConditionalOverlayTranslucentContent(t *testing.T) {
	base := uniform(2, 2, White)
	content := uniform(2, 2, RGBA(0, 0, 0, 0.5))
	o := NewConditionalOverlay(NewBinding(true), content)

	dst := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	o.Compose(dst, base)
	got := FromColor(dst.At(0, 0))
	if absDiff(got.R, 0.5) > 0.01 || !got.IsOpaque() {
		t.Errorf("translucent overlay pixel = %+v, want mid gray", got)
	}
}
