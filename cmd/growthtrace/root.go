package main

import (
	"github.com/spf13/cobra"
)

type globalOptions struct {
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "growthtrace",
		Short: "Trace the capacity growth of a dynamic array",
		Long: `growthtrace replays append workloads against a dynarray vector and
reports every reallocation, the allocator traffic it caused, and a plot of
capacity against the number of appends.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(cmd.ErrOrStderr(), g.verbose)
			initStyles(g.noColor)
		},
	}

	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log every capacity change to stderr")
	cmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newRunCmd(), newInitConfigCmd(), newFormulaCmd())
	return cmd
}
