package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var diagnosticsPrint bool

var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Copy anonymized debugging information to the clipboard",
	Long: `Collects the active task, step cursor, difficulty and usage counters.
Document keys and scene content are never included.

Counters live in the running process: a one-shot "quest diagnostics" only
reports the store operations of that invocation. Press y inside "quest panel"
to copy the counters of a whole panel session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session) error {
			if diagnosticsPrint {
				dump, err := s.rt.Engine.Diagnostics().Dump(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), dump)
				return nil
			}
			s.handler.CopyDiagnostics(ctx)
			return nil
		})
	},
}

func init() {
	diagnosticsCmd.Flags().BoolVar(&diagnosticsPrint, "print", false, "Print to stdout instead of the clipboard")
	rootCmd.AddCommand(diagnosticsCmd)
}
