package color

import "math"

// SRGBToLinear applies the sRGB EOTF to one component in [0,1].
//
//	s <= 0.04045: s/12.92
//	otherwise:    ((s+0.055)/1.055)^2.4
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB is the inverse of SRGBToLinear.
//
//	l <= 0.0031308: l*12.92
//	otherwise:      1.055*l^(1/2.4) - 0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// ToLinear decodes the RGB channels of u. Alpha is left as is.
func ToLinear(u Unit) Unit {
	return Unit{
		R: SRGBToLinear(u.R),
		G: SRGBToLinear(u.G),
		B: SRGBToLinear(u.B),
		A: u.A,
	}
}

// ToSRGB encodes the RGB channels of u. Alpha is left as is.
func ToSRGB(u Unit) Unit {
	return Unit{
		R: LinearToSRGB(u.R),
		G: LinearToSRGB(u.G),
		B: LinearToSRGB(u.B),
		A: u.A,
	}
}
