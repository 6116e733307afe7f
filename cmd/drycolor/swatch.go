package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/dry"
)

const swatchCells = "    "

// swatch renders a block of background color. Terminals without color
// support get plain spaces.
func swatch(c dry.Sample) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.HexRGB())).
		Render(swatchCells)
}

// printSample writes one line: optional label, swatch, hex and channels.
func printSample(w io.Writer, label string, c dry.Sample, plain bool) {
	if label != "" {
		fmt.Fprintf(w, "%-12s ", label)
	}
	if !plain {
		fmt.Fprint(w, swatch(c), " ")
	}
	fmt.Fprintf(w, "%-9s r=%.4f g=%.4f b=%.4f a=%.4f\n", c.Hex(), c.R, c.G, c.B, c.A)
}
