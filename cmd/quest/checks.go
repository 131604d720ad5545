package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest/pkg/registry"
)

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the check and setup names task files may reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry.Default()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Checks: %s\n", strings.Join(reg.CheckNames(), ", "))
		fmt.Fprintf(out, "Setups: %s\n", strings.Join(reg.SetupNames(), ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checksCmd)
}
