// Package color holds the channel-level arithmetic shared by dry:
// 8-bit quantization, hex digit coding and the sRGB transfer functions.
package color

// Unit holds four channels normalized to [0,1].
// RGB are sRGB-encoded unless a caller says otherwise; alpha is always linear.
type Unit struct {
	R, G, B, A float64
}

// Bytes holds four channels quantized to [0,255].
type Bytes struct {
	R, G, B, A uint8
}

// FromBytes maps each byte to v/255.
func FromBytes(b Bytes) Unit {
	return Unit{
		R: float64(b.R) / 255.0,
		G: float64(b.G) / 255.0,
		B: float64(b.B) / 255.0,
		A: float64(b.A) / 255.0,
	}
}

// ToBytes clamps each channel to [0,1] and rounds to the nearest byte.
func ToBytes(u Unit) Bytes {
	return Bytes{
		R: Quantize(u.R),
		G: Quantize(u.G),
		B: Quantize(u.B),
		A: Quantize(u.A),
	}
}

// Quantize clamps v to [0,1] and converts it to a byte with rounding.
// NaN maps to 0.
func Quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// Clamp01 restricts v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampUnit applies Clamp01 to every channel.
func ClampUnit(u Unit) Unit {
	return Unit{R: Clamp01(u.R), G: Clamp01(u.G), B: Clamp01(u.B), A: Clamp01(u.A)}
}
