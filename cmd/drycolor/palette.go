package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/dry/palette"
)

func newPaletteCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "palette <file>",
		Short: "List the colors of a TOML or YAML palette file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := palette.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Name)
			if p.Description != "" {
				fmt.Fprintln(out, p.Description)
			}
			for _, name := range p.Names() {
				c, err := p.Sample(name)
				if err != nil {
					return err
				}
				printSample(out, name, c, root.plain)
			}
			return nil
		},
	}
}
