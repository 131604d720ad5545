package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/quest/internal/adapters/clipboard"
	"github.com/aretw0/quest/internal/cli"
	"github.com/aretw0/quest/internal/commands"
	"github.com/aretw0/quest/internal/presentation/console"
)

// errReported marks failures already shown to the user as a notice.
var errReported = errors.New("command failed")

var cfg = cli.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "Quest runs guided tutorial tasks against a scene document",
	Long: `Quest walks you through tutorial tasks made of ordered steps.
Each step is checked against the current state of the scene document;
progress is saved per document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cfg.ApplyEnv(cmd.Flags())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		ctx.Cancel()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.Dir, "dir", cfg.Dir, "Project directory holding .quest/ (env QUEST_DIR)")
	flags.StringVar(&cfg.Document, "document", cfg.Document, "Document key the progress is saved under (env QUEST_DOCUMENT)")
	flags.StringVar(&cfg.Store, "store", cfg.Store, "Settings store: memory, file, redis or sqlite (env QUEST_STORE)")
	flags.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address (env QUEST_REDIS_ADDR)")
	flags.StringVar(&cfg.RedisPassword, "redis-password", cfg.RedisPassword, "Redis password (env QUEST_REDIS_PASSWORD)")
	flags.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis database (env QUEST_REDIS_DB)")
	flags.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database path, defaults to <dir>/.quest/quest.db (env QUEST_SQLITE_PATH)")
	flags.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "YAML task file or directory added to the built-in tasks (env QUEST_CATALOG)")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging (env QUEST_DEBUG)")
}

// session is the per-invocation wiring shared by the commands.
type session struct {
	rt       *cli.Runtime
	notifier *console.Notifier
	handler  *commands.Handler
}

// withSession opens the runtime and runs fn. The scene is persisted only when
// fn succeeds without reporting an error notice.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) (err error) {
	ctx := cmd.Context()

	rt, err := cli.NewRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, rt.Close())
	}()

	notifier := console.NewNotifier(cmd.OutOrStdout())
	s := &session{
		rt:       rt,
		notifier: notifier,
		handler: commands.New(rt.Engine, notifier,
			commands.WithLogger(rt.Logger),
			commands.WithDiagnostics(rt.Engine.Diagnostics()),
			commands.WithClipboard(clipboard.System{}),
		),
	}

	if err := fn(ctx, s); err != nil {
		return err
	}
	if notifier.Errors() > 0 {
		return errReported
	}
	return rt.Commit()
}
