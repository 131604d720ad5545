package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/mitchellh/mapstructure"
)

// CheckFunc defines the signature for a check implementation.
// It receives read-only access to the host document and the arguments stored in the catalog,
// and reports whether the condition currently holds.
type CheckFunc func(ctx context.Context, scene ports.SceneInspector, args map[string]any) (bool, error)

// SetupFunc prepares the host document before a task starts.
type SetupFunc func(ctx context.Context, scene ports.Scene) error

type checkEntry struct {
	eval     CheckFunc
	validate func(args map[string]any) error
}

// Registry manages the available checks and setups.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]checkEntry
	setups map[string]SetupFunc
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		checks: make(map[string]checkEntry),
		setups: make(map[string]SetupFunc),
	}
}

// Default creates a registry holding the built-in checks and setups.
func Default() *Registry {
	r := New()
	registerBuiltins(r)
	return r
}

// RegisterCheck adds an untyped check to the registry.
// If a check with the same name exists, it is overwritten.
func (r *Registry) RegisterCheck(name string, fn CheckFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = checkEntry{eval: fn}
}

// RegisterTypedCheck adds a check whose arguments are decoded into A.
// Arguments are validated when a catalog references the check, so malformed
// task data is rejected before any user interaction.
func RegisterTypedCheck[A any](r *Registry, name string, fn func(ctx context.Context, scene ports.SceneInspector, args A) (bool, error)) {
	entry := checkEntry{
		eval: func(ctx context.Context, scene ports.SceneInspector, raw map[string]any) (bool, error) {
			args, err := decodeArgs[A](raw)
			if err != nil {
				return false, err
			}
			return fn(ctx, scene, args)
		},
		validate: func(raw map[string]any) error {
			_, err := decodeArgs[A](raw)
			return err
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = entry
}

// RegisterSetup adds a setup action to the registry.
func (r *Registry) RegisterSetup(name string, fn SetupFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setups[name] = fn
}

// ValidateCheck ensures the check is registered and its arguments decode.
func (r *Registry) ValidateCheck(c domain.Check) error {
	r.mu.RLock()
	entry, ok := r.checks[c.Name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCheck, c.Name)
	}
	if entry.validate == nil {
		return nil
	}
	if err := entry.validate(c.Args); err != nil {
		return fmt.Errorf("check %s: %w", c.Name, err)
	}
	return nil
}

// HasSetup reports whether a setup action is registered.
func (r *Registry) HasSetup(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.setups[name]
	return ok
}

// Evaluate looks up a check by name and runs it against the scene.
// Returns an error wrapping domain.ErrUnknownCheck if the check is not found.
func (r *Registry) Evaluate(ctx context.Context, scene ports.SceneInspector, c domain.Check) (bool, error) {
	r.mu.RLock()
	entry, ok := r.checks[c.Name]
	r.mu.RUnlock()

	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrUnknownCheck, c.Name)
	}

	return entry.eval(ctx, scene, c.Args)
}

// Prepare runs the named setup action against the scene.
func (r *Registry) Prepare(ctx context.Context, scene ports.Scene, name string) error {
	r.mu.RLock()
	fn, ok := r.setups[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetup, name)
	}

	return fn(ctx, scene)
}

// CheckNames returns the registered check names, sorted.
func (r *Registry) CheckNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetupNames returns the registered setup names, sorted.
func (r *Registry) SetupNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.setups))
	for name := range r.setups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type validatable interface {
	Validate() error
}

func decodeArgs[A any](raw map[string]any) (A, error) {
	var out A
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, fmt.Errorf("failed to create args decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return out, fmt.Errorf("invalid args: %w", err)
	}
	if v, ok := any(&out).(validatable); ok {
		if err := v.Validate(); err != nil {
			return out, fmt.Errorf("invalid args: %w", err)
		}
	}
	return out, nil
}
