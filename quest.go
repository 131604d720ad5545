package quest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/internal/runtime"
	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/adapters/scene"
	"github.com/aretw0/quest/pkg/catalog"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/observability"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/aretw0/quest/pkg/registry"
)

// Engine is the high-level entry point for the Quest library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime  *runtime.Engine
	registry *registry.Registry
	catalog  *catalog.Catalog
	extra    []domain.Task
	scene    ports.Scene
	store    ports.SettingsStore
	document string
	hooks    domain.LifecycleHooks
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the built-in checks and setups.
func WithRegistry(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithCatalog injects a prebuilt catalog, bypassing the built-in tasks.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithTasks appends tasks to the built-in catalog.
// It is ignored when WithCatalog is provided.
func WithTasks(tasks ...domain.Task) Option {
	return func(e *Engine) {
		e.extra = append(e.extra, tasks...)
	}
}

// WithScene injects the host document. Defaults to an in-memory simulated scene.
func WithScene(s ports.Scene) Option {
	return func(e *Engine) {
		e.scene = s
	}
}

// WithStore injects the settings store. Defaults to an in-memory store.
func WithStore(s ports.SettingsStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithDocument selects the settings record of a host document.
func WithDocument(document string) Option {
	return func(e *Engine) {
		e.document = document
	}
}

// WithMetrics records engine events on the given counters.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New initializes a new Quest Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		eng.registry = registry.Default()
	}
	if eng.catalog == nil {
		c, err := catalog.Default(eng.registry, eng.extra...)
		if err != nil {
			return nil, fmt.Errorf("failed to build catalog: %w", err)
		}
		eng.catalog = c
	}
	if eng.scene == nil {
		eng.scene = scene.New()
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	hooks := observability.LoggingHooks(eng.logger).Merge(eng.hooks)
	if eng.metrics != nil {
		hooks = hooks.Merge(eng.metrics.Hooks())
	}

	eng.runtime = runtime.NewEngine(
		eng.catalog,
		eng.registry,
		eng.scene,
		eng.store,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithDocument(eng.document),
	)

	return eng, nil
}

// LoadTask starts or restarts the named task.
func (e *Engine) LoadTask(ctx context.Context, name string) error {
	return e.runtime.LoadTask(ctx, name)
}

// CheckCurrentStep validates the current step against the host document.
func (e *Engine) CheckCurrentStep(ctx context.Context) (domain.Outcome, error) {
	return e.runtime.CheckCurrentStep(ctx)
}

// Settings returns the persisted record of the active document.
func (e *Engine) Settings(ctx context.Context) (*domain.Settings, error) {
	return e.runtime.Settings(ctx)
}

// SetDifficulty persists the difficulty filter.
func (e *Engine) SetDifficulty(ctx context.Context, d domain.Difficulty) error {
	return e.runtime.SetDifficulty(ctx, d)
}

// AvailableTasks lists the tasks of the persisted difficulty filter.
func (e *Engine) AvailableTasks(ctx context.Context) ([]string, error) {
	settings, err := e.runtime.Settings(ctx)
	if err != nil {
		return nil, err
	}
	return e.catalog.List(settings.Difficulty), nil
}

// Catalog returns the task catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Scene returns the host document the engine inspects.
func (e *Engine) Scene() ports.Scene {
	return e.scene
}

// Store returns the settings store.
func (e *Engine) Store() ports.SettingsStore {
	return e.store
}

// Document returns the settings key in use.
func (e *Engine) Document() string {
	return e.runtime.Document()
}

// Diagnostics returns the diagnostics renderer for this engine.
func (e *Engine) Diagnostics() *observability.Diagnostics {
	return observability.NewDiagnostics(e.metrics, e.runtime, strings.TrimSpace(Version))
}
