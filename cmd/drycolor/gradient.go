package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/dry"
)

type gradientFlags struct {
	steps  int
	space  string
	out    string
	width  int
	height int
}

func newGradientCmd(root *rootFlags) *cobra.Command {
	flags := &gradientFlags{}

	cmd := &cobra.Command{
		Use:   "gradient <start> <end>",
		Short: "Print evenly spaced colors between two endpoints",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.steps < 2 {
				return errors.New("--steps must be at least 2")
			}
			space, err := dry.ParseSpace(flags.space)
			if err != nil {
				return err
			}
			start, end, err := resolvePair(args[0], args[1])
			if err != nil {
				return err
			}

			samples := dry.Steps(space, start, end, flags.steps)
			for i, c := range samples {
				printSample(cmd.OutOrStdout(), fmt.Sprintf("%d", i), c, root.plain)
			}

			if flags.out == "" {
				return nil
			}
			if err := writeStrip(flags.out, samples, flags.width, flags.height); err != nil {
				return err
			}
			dry.Logger().Debug("gradient written", "path", flags.out, "steps", len(samples))
			return nil
		},
	}

	cmd.Flags().IntVarP(&flags.steps, "steps", "n", 8, "Number of colors, endpoints included")
	cmd.Flags().StringVar(&flags.space, "space", "srgb", "Blend space: srgb, linear, lab or hcl")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Write the gradient as a PNG strip")
	cmd.Flags().IntVar(&flags.width, "width", 512, "PNG width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", 64, "PNG height in pixels")
	return cmd
}

// stripImage lays samples out as one pixel each, then stretches the row
// to w x h so every band has equal width.
func stripImage(samples []dry.Sample, w, h int) *image.NRGBA {
	row := image.NewNRGBA(image.Rect(0, 0, len(samples), 1))
	for i, c := range samples {
		row.SetNRGBA(i, 0, c.NRGBA())
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), row, row.Bounds(), xdraw.Src, nil)
	return dst
}

func writeStrip(path string, samples []dry.Sample, w, h int) (err error) {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid image size %dx%d", w, h)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, stripImage(samples, w, h))
}
