package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/pkg/catalog"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/aretw0/quest/pkg/registry"
)

// DefaultDocument is the settings key used when none is configured.
const DefaultDocument = "default"

// Engine loads tasks and validates progress against the live host document.
// It holds no task state of its own: every call re-reads the settings record
// and resolves the active task by name through the catalog.
type Engine struct {
	catalog  *catalog.Catalog
	registry *registry.Registry
	scene    ports.Scene
	store    ports.SettingsStore
	document string
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	now      func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithDocument selects the settings record the engine reads and writes.
func WithDocument(document string) EngineOption {
	return func(e *Engine) {
		if document != "" {
			e.document = document
		}
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a new engine with dependencies.
func NewEngine(cat *catalog.Catalog, reg *registry.Registry, scene ports.Scene, store ports.SettingsStore, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog:  cat,
		registry: reg,
		scene:    scene,
		store:    store,
		document: DefaultDocument,
		logger:   logging.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the task catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Document returns the settings key in use.
func (e *Engine) Document() string {
	return e.document
}

// Settings returns the persisted record, or a fresh one when nothing was saved yet.
func (e *Engine) Settings(ctx context.Context) (*domain.Settings, error) {
	settings, err := e.store.Load(ctx, e.document)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return domain.NewSettings(), nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// SetDifficulty persists the difficulty filter. The active task is untouched.
func (e *Engine) SetDifficulty(ctx context.Context, d domain.Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidDifficulty, int(d))
	}
	settings, err := e.Settings(ctx)
	if err != nil {
		return err
	}
	settings.Difficulty = d
	if err := e.store.Save(ctx, e.document, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// LoadTask starts (or restarts) a task: it prepares the scene and resets the
// persisted progress to the first step.
// An unknown name returns domain.ErrTaskNotFound without touching the scene or the store.
func (e *Engine) LoadTask(ctx context.Context, name string) error {
	task, ok := e.catalog.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, name)
	}

	// Read first so a broken store does not leave a prepared scene behind.
	settings, err := e.Settings(ctx)
	if err != nil {
		return err
	}

	if err := e.registry.Prepare(ctx, e.scene, task.SetupName()); err != nil {
		return fmt.Errorf("failed to prepare scene for %q: %w", task.Name, err)
	}

	settings.Progress = domain.NewProgress(task)
	if err := e.store.Save(ctx, e.document, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	e.logger.DebugContext(ctx, "task loaded", "task", task.Name, "steps", len(task.Steps), "setup", task.SetupName())

	if e.hooks.OnTaskLoaded != nil {
		e.hooks.OnTaskLoaded(ctx, &domain.TaskEvent{
			EventBase:  domain.EventBase{Timestamp: e.now(), Type: domain.EventTaskLoaded},
			TaskName:   task.Name,
			Difficulty: task.Difficulty,
			Steps:      len(task.Steps),
		})
	}

	return nil
}

// CheckCurrentStep evaluates every check of the step at the cursor and advances
// the cursor by one when all of them hold.
//
// STEP_NOT_FOUND is returned together with an error wrapping domain.ErrStepNotFound.
// Any other error is internal (the store failed or a check is not registered)
// and leaves the record unchanged.
func (e *Engine) CheckCurrentStep(ctx context.Context) (domain.Outcome, error) {
	settings, err := e.Settings(ctx)
	if err != nil {
		return domain.OutcomeNotSatisfied, err
	}
	progress := settings.Progress

	if progress.IsFinished() {
		e.emitStep(ctx, progress, "", domain.OutcomeAlreadyFinished)
		return domain.OutcomeAlreadyFinished, nil
	}

	step, err := e.resolveStep(progress)
	if err != nil {
		e.logger.WarnContext(ctx, "current step not resolvable", "task", progress.Name, "cursor", progress.CurrentStep, "error", err)
		e.emitStep(ctx, progress, "", domain.OutcomeStepNotFound)
		return domain.OutcomeStepNotFound, err
	}

	satisfied, err := e.evaluate(ctx, step)
	if err != nil {
		return domain.OutcomeNotSatisfied, err
	}

	if !satisfied {
		e.logger.DebugContext(ctx, "step not satisfied", "task", progress.Name, "step", step.Name)
		e.emitStep(ctx, progress, step.Name, domain.OutcomeNotSatisfied)
		return domain.OutcomeNotSatisfied, nil
	}

	settings.Progress.CurrentStep++
	if err := e.store.Save(ctx, e.document, settings); err != nil {
		return domain.OutcomeNotSatisfied, fmt.Errorf("failed to save settings: %w", err)
	}

	e.logger.DebugContext(ctx, "step advanced", "task", progress.Name, "step", step.Name, "cursor", settings.Progress.CurrentStep)
	e.emitStep(ctx, settings.Progress, step.Name, domain.OutcomeAdvanced)
	return domain.OutcomeAdvanced, nil
}

// resolveStep maps the descriptor at the cursor back to its catalog definition.
func (e *Engine) resolveStep(progress domain.Progress) (domain.Step, error) {
	current, ok := progress.Current()
	if !ok {
		return domain.Step{}, fmt.Errorf("%w: cursor %d out of range (%d steps)", domain.ErrStepNotFound, progress.CurrentStep, len(progress.Steps))
	}
	task, ok := e.catalog.Find(progress.Name)
	if !ok {
		return domain.Step{}, fmt.Errorf("%w: task %q is not in the catalog", domain.ErrStepNotFound, progress.Name)
	}
	step, ok := task.Step(current.Name)
	if !ok {
		return domain.Step{}, fmt.Errorf("%w: task %q has no step %q", domain.ErrStepNotFound, task.Name, current.Name)
	}
	return step, nil
}

// evaluate runs every check (no short-circuit) and ANDs the results.
// A failing check counts as false; an unregistered one aborts the evaluation.
func (e *Engine) evaluate(ctx context.Context, step domain.Step) (bool, error) {
	satisfied := true
	for _, check := range step.Checks {
		ok, err := e.registry.Evaluate(ctx, e.scene, check)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownCheck) {
				return false, fmt.Errorf("step %q: %w", step.Name, err)
			}
			e.logger.WarnContext(ctx, "check failed", "step", step.Name, "check", check.Name, "error", err)
			ok = false
		}
		satisfied = satisfied && ok
	}
	return satisfied, nil
}

func (e *Engine) emitStep(ctx context.Context, progress domain.Progress, stepName string, outcome domain.Outcome) {
	if e.hooks.OnStepChecked == nil {
		return
	}
	e.hooks.OnStepChecked(ctx, &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventStepChecked},
		TaskName:  progress.Name,
		StepName:  stepName,
		Cursor:    progress.CurrentStep,
		Outcome:   outcome,
		Finished:  !progress.IsEmpty() && progress.IsFinished(),
	})
}
