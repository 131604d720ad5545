package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest/internal/cli"
	"github.com/aretw0/quest/pkg/ports"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage saved progress records",
	Long:  `List, inspect, and remove the settings records kept per document key.`,
}

var documentLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List document keys with saved progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store ports.SettingsStore) error {
			keys, err := store.List(ctx)
			if err != nil {
				return fmt.Errorf("error listing documents: %w", err)
			}
			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved documents found.")
				return nil
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), "- "+k)
			}
			return nil
		})
	},
}

var documentInspectCmd = &cobra.Command{
	Use:   "inspect <document>",
	Short: "Print the saved record of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store ports.SettingsStore) error {
			settings, err := store.Load(ctx, args[0])
			if err != nil {
				return fmt.Errorf("error loading document '%s': %w", args[0], err)
			}
			data, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return fmt.Errorf("error marshaling settings: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		})
	},
}

var documentRmCmd = &cobra.Command{
	Use:   "rm <document>...",
	Short: "Remove saved records",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store ports.SettingsStore) error {
			var errs []error
			for _, key := range args {
				if err := store.Delete(ctx, key); err != nil {
					errs = append(errs, fmt.Errorf("error removing '%s': %w", key, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed document '%s'\n", key)
			}
			return errors.Join(errs...)
		})
	},
}

func withStore(cmd *cobra.Command, fn func(ctx context.Context, store ports.SettingsStore) error) (err error) {
	ctx := cmd.Context()
	store, closer, err := cli.NewStore(ctx, cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() {
			err = errors.Join(err, closer())
		}()
	}
	return fn(ctx, store)
}

func init() {
	rootCmd.AddCommand(documentCmd)
	documentCmd.AddCommand(documentLsCmd)
	documentCmd.AddCommand(documentInspectCmd)
	documentCmd.AddCommand(documentRmCmd)
}
