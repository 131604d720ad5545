package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest/pkg/domain"
)

var difficultyCmd = &cobra.Command{
	Use:       "difficulty [beginner|medium|guru]",
	Short:     "Show or set the difficulty filter",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"beginner", "medium", "guru"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			if len(args) == 1 {
				d, err := domain.ParseDifficulty(args[0])
				if err != nil {
					return err
				}
				if err := s.rt.Engine.SetDifficulty(ctx, d); err != nil {
					return err
				}
			}

			settings, err := s.rt.Engine.Settings(ctx)
			if err != nil {
				return err
			}
			d := settings.Difficulty
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Label(), d.Blurb())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(difficultyCmd)
}
