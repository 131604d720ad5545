package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest/internal/cli"
	"github.com/aretw0/quest/internal/presentation/console"
	"github.com/aretw0/quest/internal/presentation/panel"
	"github.com/aretw0/quest/internal/presentation/tui"
	"github.com/aretw0/quest/pkg/domain"
)

var tasksAll bool

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the tasks of the selected difficulty",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			settings, err := s.rt.Engine.Settings(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIFFICULTY\tSTEPS\tACTIVE\tDESCRIPTION")
			for _, task := range s.rt.Engine.Catalog().Tasks() {
				if !tasksAll && task.Difficulty != settings.Difficulty {
					continue
				}
				active := ""
				if task.Name == settings.Progress.Name {
					active = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					task.Name, task.Difficulty, len(task.Steps), active, task.Description)
			}
			return w.Flush()
		})
	},
}

var startCmd = &cobra.Command{
	Use:   "start <task>",
	Short: "Start (or restart) a task from its first step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			if !s.handler.StartTask(ctx, args[0]) {
				return nil
			}
			return printStatus(ctx, cmd, s)
		})
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the active task",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			if !s.handler.RestartTask(ctx) {
				return nil
			}
			return printStatus(ctx, cmd, s)
		})
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Check the current step against the scene",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			outcome := s.handler.SubmitStep(ctx)
			if outcome == domain.OutcomeAdvanced {
				return printStatus(ctx, cmd, s)
			}
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the panel: difficulty, tasks and step checklist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cli.IsInteractive(os.Stdout) {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		return withSession(cmd, func(ctx context.Context, s *session) error {
			return printStatus(ctx, cmd, s)
		})
	},
}

func printStatus(ctx context.Context, cmd *cobra.Command, s *session) error {
	settings, err := s.rt.Engine.Settings(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	console.RenderPanel(cmd.OutOrStdout(), panel.Build(s.rt.Engine.Catalog(), settings))
	return nil
}

func init() {
	tasksCmd.Flags().BoolVarP(&tasksAll, "all", "a", false, "List tasks of every difficulty")

	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(statusCmd)
}
