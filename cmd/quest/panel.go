package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest/internal/adapters/clipboard"
	"github.com/aretw0/quest/internal/cli"
	"github.com/aretw0/quest/internal/presentation/tui"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the interactive side panel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			if !cli.IsInteractive(os.Stdout) {
				s.rt.Logger.Warn("stdout is not a terminal, the panel may not render correctly")
			}
			return tui.Run(ctx, s.rt.Engine,
				tui.WithLogger(s.rt.Logger),
				tui.WithClipboard(clipboard.System{}),
				tui.WithDiagnostics(s.rt.Engine.Diagnostics()),
				tui.WithRenderer(tui.NewRenderer(56)),
			)
		})
	},
}

func init() {
	rootCmd.AddCommand(panelCmd)
}
