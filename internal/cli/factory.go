package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/quest"
	"github.com/aretw0/quest/internal/adapters/file"
	"github.com/aretw0/quest/internal/adapters/redis"
	"github.com/aretw0/quest/internal/adapters/sqlite"
	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/adapters/scene"
	"github.com/aretw0/quest/pkg/observability"
	"github.com/aretw0/quest/pkg/persistence/middleware"
	"github.com/aretw0/quest/pkg/ports"
)

// Runtime bundles the engine and the resources the CLI must release.
type Runtime struct {
	Engine  *quest.Engine
	Scene   *scene.Scene
	Metrics *observability.Metrics
	Logger  *slog.Logger

	closers []func() error
}

// Commit writes the host document back to disk.
func (r *Runtime) Commit() error {
	return r.Scene.Flush()
}

// Close releases the store. Scene edits not committed are discarded.
func (r *Runtime) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// NewRuntime wires an engine following the CLI conventions:
// the document lives in <dir>/.quest/scene.yaml and extra tasks come from --catalog.
func NewRuntime(ctx context.Context, cfg Config) (*Runtime, error) {
	logger := createLogger(cfg.Debug)

	doc, err := scene.Open(cfg.ScenePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}

	store, closer, err := newStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Scene:   doc,
		Metrics: observability.NewMetrics(),
		Logger:  logger,
	}
	if closer != nil {
		rt.closers = append(rt.closers, closer)
	}
	store = middleware.Chain(store,
		middleware.NewLoggingMiddleware(logger),
		middleware.NewObserverMiddleware(rt.Metrics.ObserveStore),
	)

	opts := []quest.Option{
		quest.WithLogger(logger),
		quest.WithScene(doc),
		quest.WithStore(store),
		quest.WithDocument(cfg.Document),
		quest.WithMetrics(rt.Metrics),
	}
	if cfg.Catalog != "" {
		tasks, err := LoadTasks(ctx, cfg.Catalog)
		if err != nil {
			_ = rt.Close()
			return nil, fmt.Errorf("failed to load catalog %s: %w", cfg.Catalog, err)
		}
		opts = append(opts, quest.WithTasks(tasks...))
	}

	rt.Engine, err = quest.New(opts...)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return rt, nil
}

// NewStore builds the settings store selected by cfg.
// The returned closer may be nil.
func NewStore(ctx context.Context, cfg Config) (ports.SettingsStore, func() error, error) {
	return newStore(ctx, cfg, createLogger(cfg.Debug))
}

func newStore(ctx context.Context, cfg Config, logger *slog.Logger) (ports.SettingsStore, func() error, error) {
	switch cfg.Store {
	case StoreMemory:
		return memory.NewStore(), nil, nil
	case StoreFile:
		return file.New(cfg.SettingsDir()), nil, nil
	case StoreRedis:
		s := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("redis unreachable at %s: %w", cfg.RedisAddr, err)
		}
		return s, s.Close, nil
	case StoreSQLite:
		s, err := sqlite.New(ctx, sqlite.StoreConfig{DBPath: cfg.DBPath(), Logger: logger})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
