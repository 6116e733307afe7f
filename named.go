package dry

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Named looks up an SVG 1.1 color keyword such as "tomato" or
// "DarkSlateGray". Lookup ignores case and surrounding whitespace.
func Named(name string) (Sample, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Sample{}, false
	}
	return FromColor(c), true
}

// Resolve accepts either a hex color or a color keyword.
// If neither matches, the error from ParseHex is returned.
func Resolve(s string) (Sample, error) {
	c, err := ParseHex(s)
	if err == nil {
		return c, nil
	}
	if n, ok := Named(s); ok {
		return n, nil
	}
	return Sample{}, err
}
