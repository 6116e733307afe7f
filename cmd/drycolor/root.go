package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/dry"
)

type rootFlags struct {
	verbose bool
	plain   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "drycolor",
		Short:         "Parse, blend and preview hex colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !flags.verbose {
				dry.SetLogger(nil)
				return
			}
			dry.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.plain, "plain", false, "Omit color swatches")

	cmd.AddCommand(newParseCmd(flags))
	cmd.AddCommand(newLerpCmd(flags))
	cmd.AddCommand(newGradientCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
