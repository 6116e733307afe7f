// Package dry provides small, dependency-light color helpers for Go UIs.
//
// # Overview
//
// The core type is [Sample], a color with four float64 channels in [0, 1].
// Samples come from hex strings, color keywords or any image/color value,
// and can be blended, encoded back to hex, or handed to image APIs
// directly since Sample implements color.Color.
//
// # Quick Start
//
//	import "github.com/gogpu/dry"
//
//	accent, err := dry.ParseHex("#FF7E5F")
//	if err != nil {
//	    // err wraps dry.ErrInvalidHex
//	}
//	bg := dry.HexOr(userInput, dry.White) // fallback instead of an error
//	mid := dry.Lerp(accent, bg, 0.5)
//	fmt.Println(mid.Hex())
//
// # Hex format
//
// ParseHex accepts "[#]RRGGBB" and "[#]RRGGBBAA", case-insensitive, with
// optional surrounding whitespace. Shorthand "#RGB" forms are rejected.
//
// # Interpolation
//
// [Lerp] blends channel by channel in the encoded space and clamps t to
// [0, 1]. [LerpIn] blends in linear light, CIE Lab or HCL instead.
//
// # Adapters
//
// Platform types stay outside the package. [Extractor] reads platform
// color handles, [Display] reports screen size, and the motion
// sub-package takes a motion.Sensor. [ConditionalOverlay] composites
// images under the control of a [Binding].
//
// # Logging
//
// dry logs nothing by default. See [SetLogger].
package dry

// Version is the current version of the library.
const Version = "0.1.0"
