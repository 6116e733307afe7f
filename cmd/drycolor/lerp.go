package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/dry"
)

func newLerpCmd(root *rootFlags) *cobra.Command {
	var spaceName string

	cmd := &cobra.Command{
		Use:   "lerp <start> <end> <t>",
		Short: "Interpolate between two colors",
		Long:  "Interpolate between two colors. t is clamped to [0, 1].",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := dry.ParseSpace(spaceName)
			if err != nil {
				return err
			}
			start, end, err := resolvePair(args[0], args[1])
			if err != nil {
				return err
			}
			t, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid t %q: %w", args[2], err)
			}
			printSample(cmd.OutOrStdout(), "", dry.LerpIn(space, start, end, t), root.plain)
			return nil
		},
	}

	cmd.Flags().StringVar(&spaceName, "space", "srgb", "Blend space: srgb, linear, lab or hcl")
	return cmd
}

func resolvePair(a, b string) (dry.Sample, dry.Sample, error) {
	start, err := dry.Resolve(a)
	if err != nil {
		return dry.Sample{}, dry.Sample{}, err
	}
	end, err := dry.Resolve(b)
	if err != nil {
		return dry.Sample{}, dry.Sample{}, err
	}
	return start, end, nil
}
