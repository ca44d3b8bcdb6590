package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pavanmanishd/dynarray/internal/scenario"
	"github.com/spf13/cobra"
)

func newFormulaCmd() *cobra.Command {
	var plot bool
	cmd := &cobra.Command{
		Use:   "formula [appends]",
		Short: "Print the capacities an empty vector grows through",
		Long: `The formula command appends one element at a time to an empty vector and
prints each capacity it reallocates to. The new capacity is 1.5 times the
old one, at least the requested size, and capped at the allocator maximum.

Example:
  growthtrace formula
  growthtrace formula 1000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 100
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 0 {
					return fmt.Errorf("invalid append count %q", args[0])
				}
				n = v
			}

			caps, err := scenario.GrowthSequence(n)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Capacities for %d appends", n)))

			parts := make([]string, len(caps))
			for i, c := range caps {
				parts[i] = strconv.Itoa(c)
			}
			fmt.Fprintln(w, strings.Join(parts, " "))

			if plot && len(caps) > 1 {
				data := make([]float64, len(caps))
				for i, c := range caps {
					data[i] = float64(c)
				}
				fmt.Fprintln(w)
				fmt.Fprintln(w, plotCapacities(data, 0, "capacity per reallocation"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plot, "plot", false, "Plot the sequence")
	return cmd
}
