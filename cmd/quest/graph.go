package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest/internal/presentation/graph"
	"github.com/aretw0/quest/pkg/domain"
)

var graphCmd = &cobra.Command{
	Use:   "graph [task]",
	Short: "Print a task as a Mermaid flowchart",
	Long: `Renders the steps and checks of a task as Mermaid.
Without an argument the active task is drawn with its progress highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			settings, err := s.rt.Engine.Settings(ctx)
			if err != nil {
				return err
			}

			name := settings.Progress.Name
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" {
				return fmt.Errorf("no task loaded, pass a task name")
			}

			task, ok := s.rt.Engine.Catalog().Find(name)
			if !ok {
				return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, name)
			}

			var overlay *graph.Overlay
			if name == settings.Progress.Name {
				overlay = &graph.Overlay{Cursor: settings.Progress.CurrentStep}
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(task, overlay))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
