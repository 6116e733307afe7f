package dry

import (
	"image"
	"image/draw"
	"sync/atomic"

	xdraw "golang.org/x/image/draw"
)

// Binding is a boolean shared between the code that owns a piece of state
// and the views that read it. The zero value is false and ready to use.
//
// Binding is safe for concurrent use.
type Binding struct {
	v atomic.Bool
}

// NewBinding returns a binding holding v.
func NewBinding(v bool) *Binding {
	b := &Binding{}
	b.v.Store(v)
	return b
}

// Get returns the current value.
func (b *Binding) Get() bool { return b.v.Load() }

// Set stores v.
func (b *Binding) Set(v bool) { b.v.Store(v) }

// Toggle flips the value and returns the new one.
func (b *Binding) Toggle() bool {
	for {
		old := b.v.Load()
		if b.v.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// ConditionalOverlay draws content over a base image only while its
// binding is true. When hidden, the overlay still exists but has zero
// opacity, so toggling it never changes the base layout.
type ConditionalOverlay struct {
	visible *Binding
	content image.Image
}

// NewConditionalOverlay returns an overlay of content controlled by visible.
// A nil binding keeps the overlay hidden.
func NewConditionalOverlay(visible *Binding, content image.Image) *ConditionalOverlay {
	return &ConditionalOverlay{visible: visible, content: content}
}

// Visible reports the current state of the binding.
func (o *ConditionalOverlay) Visible() bool {
	return o.visible != nil && o.visible.Get()
}

// Opacity returns 1 while visible and 0 otherwise.
func (o *ConditionalOverlay) Opacity() float64 {
	if o.Visible() {
		return 1
	}
	return 0
}

// Compose copies base into dst and, if the overlay is visible, scales the
// content over the whole of dst using the Over operator.
// A nil base leaves dst's existing pixels as the base layer.
func (o *ConditionalOverlay) Compose(dst draw.Image, base image.Image) {
	r := dst.Bounds()
	if base != nil {
		xdraw.Copy(dst, r.Min, base, base.Bounds(), xdraw.Src, nil)
	}
	if o.content == nil || o.Opacity() == 0 {
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, r, o.content, o.content.Bounds(), xdraw.Over, nil)
}
