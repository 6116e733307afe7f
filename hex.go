package dry

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	icolor "github.com/gogpu/dry/internal/color"
)

// ErrInvalidHex is matched by every error returned from ParseHex.
var ErrInvalidHex = errors.New("dry: invalid hex color")

// Reason tells why a hex string was rejected.
type Reason uint8

const (
	// ReasonLength means the cleaned string was not 6 or 8 characters long.
	ReasonLength Reason = iota + 1
	// ReasonDigit means a character was not a hexadecimal digit.
	ReasonDigit
)

func (r Reason) String() string {
	switch r {
	case ReasonLength:
		return "length must be 6 or 8 digits"
	case ReasonDigit:
		return "non-hex digit"
	default:
		return "unknown"
	}
}

// ParseError is returned by ParseHex for malformed input.
type ParseError struct {
	Input  string // as given by the caller
	Reason Reason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dry: invalid hex color %q: %s", e.Input, e.Reason)
}

// Is reports true for ErrInvalidHex.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidHex
}

// ParseHex parses "[#]RRGGBB" or "[#]RRGGBBAA" into a sample.
// Surrounding whitespace is ignored and digits are case-insensitive.
// A 6-digit color is fully opaque.
//
// On failure ParseHex returns a zero Sample and a *ParseError; it never
// panics. Use Hex or HexOr to substitute a fallback color.
func ParseHex(s string) (Sample, error) {
	hex := cleanHex(s)

	n := utf8.RuneCountInString(hex)
	if n != 6 && n != 8 {
		return Sample{}, &ParseError{Input: s, Reason: ReasonLength}
	}

	var b icolor.Bytes
	b.A = 255
	dst := [4]*uint8{&b.R, &b.G, &b.B, &b.A}
	for i := 0; i < n/2; i++ {
		v, ok := icolor.DecodePair(hex, i*2)
		if !ok {
			return Sample{}, &ParseError{Input: s, Reason: ReasonDigit}
		}
		*dst[i] = v
	}
	return fromUnit(icolor.FromBytes(b)), nil
}

// cleanHex trims whitespace, uppercases and drops one leading '#'.
// Uppercasing uses full Unicode case mapping; a cases.Caser keeps state,
// so one is built per call.
func cleanHex(s string) string {
	s = strings.TrimSpace(s)
	s = cases.Upper(language.Und).String(s)
	return strings.TrimPrefix(s, "#")
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is meant for package-level color constants.
func MustParseHex(s string) Sample {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex parses a hex color and falls back to Transparent on failure.
//
//	bg := dry.Hex("#1E1E2E")
func Hex(s string) Sample {
	return HexOr(s, Transparent)
}

// HexOr parses a hex color and falls back to def on failure.
func HexOr(s string, def Sample) Sample {
	c, err := ParseHex(s)
	if err != nil {
		Logger().Debug("dry: hex fallback", "input", s, "err", err)
		return def
	}
	return c
}

// Hex encodes the sample as "#RRGGBB", or "#RRGGBBAA" when it is not opaque.
// Channels are clamped and rounded to 8 bits.
func (s Sample) Hex() string {
	if s.IsOpaque() {
		return s.HexRGB()
	}
	return s.HexRGBA()
}

// HexRGB encodes the sample as "#RRGGBB", dropping alpha.
func (s Sample) HexRGB() string {
	return string(s.appendHex(make([]byte, 0, 7), false))
}

// HexRGBA encodes the sample as "#RRGGBBAA".
func (s Sample) HexRGBA() string {
	return string(s.appendHex(make([]byte, 0, 9), true))
}

func (s Sample) appendHex(dst []byte, alpha bool) []byte {
	b := icolor.ToBytes(s.unit())
	dst = append(dst, '#')
	dst = icolor.AppendPair(dst, b.R)
	dst = icolor.AppendPair(dst, b.G)
	dst = icolor.AppendPair(dst, b.B)
	if alpha {
		dst = icolor.AppendPair(dst, b.A)
	}
	return dst
}

// String implements fmt.Stringer.
func (s Sample) String() string {
	return s.Hex()
}
