package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/dry"
)

func newParseCmd(root *rootFlags) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "parse <color>...",
		Short: "Print the channels of hex colors or color keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var def *dry.Sample
			if fallback != "" {
				d, err := dry.Resolve(fallback)
				if err != nil {
					return fmt.Errorf("--fallback: %w", err)
				}
				def = &d
			}

			var errs []error
			for _, arg := range args {
				c, err := dry.Resolve(arg)
				if err != nil {
					if def == nil {
						errs = append(errs, err)
						continue
					}
					dry.Logger().Debug("using fallback", "input", arg, "err", err)
					c = *def
				}
				printSample(cmd.OutOrStdout(), arg, c, root.plain)
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringVar(&fallback, "fallback", "", "Color printed in place of unparseable input")
	return cmd
}
