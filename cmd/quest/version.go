package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest"
	"github.com/aretw0/quest/internal/cli"
	"github.com/aretw0/quest/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quest",
	Run: func(cmd *cobra.Command, args []string) {
		if cli.IsInteractive(os.Stdout) {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "quest version %s\n", strings.TrimSpace(quest.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
