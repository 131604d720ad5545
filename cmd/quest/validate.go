package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest/internal/cli"
	"github.com/aretw0/quest/pkg/catalog"
	"github.com/aretw0/quest/pkg/registry"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check YAML and markdown task files against the registered checks",
	Long: `Parses a task file or directory and validates it together with the
built-in tasks: unique names, known difficulties, registered checks and setups.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := cli.LoadTasks(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		c, err := catalog.Default(registry.Default(), tasks...)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d task(s) valid, %d in catalog.\n", len(tasks), c.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
