package main

import (
	"fmt"
	"os"

	"github.com/pavanmanishd/dynarray/internal/scenario"
	"github.com/spf13/cobra"
)

func newInitConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config <path>",
		Short: "Write the default scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := scenario.Save(path, scenario.DefaultFile()); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			logger.Info("wrote scenario file", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d scenarios to %s\n", len(scenario.DefaultFile().Scenarios), path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
