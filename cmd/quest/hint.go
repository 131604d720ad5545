package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest/internal/commands"
	"github.com/aretw0/quest/internal/presentation/console"
	"github.com/aretw0/quest/internal/presentation/tui"
)

var hintCmd = &cobra.Command{
	Use:   "hint [step]",
	Short: "Show the instructions of the current (or named) step",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			settings, err := s.rt.Engine.Settings(ctx)
			if err != nil {
				return err
			}

			var message, title string
			progress := settings.Progress
			if len(args) == 1 {
				found := false
				for _, step := range progress.Steps {
					if step.Name == args[0] {
						message, title, found = step.Description, step.Name, true
						break
					}
				}
				if !found {
					return fmt.Errorf("step %q is not part of the active task", args[0])
				}
			} else if step, ok := progress.Current(); ok {
				message = step.Description
			}

			notifier := console.NewNotifier(cmd.OutOrStdout(), console.WithMarkdown(tui.NewRenderer(80)))
			commands.New(s.rt.Engine, notifier).ShowHint(message, title)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(hintCmd)
}
