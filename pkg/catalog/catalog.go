package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/registry"
)

// Catalog is the immutable, ordered set of available tasks.
type Catalog struct {
	tasks []domain.Task
	index map[string]int
}

// New validates the tasks against the registry and builds a catalog.
// All problems are reported together.
func New(reg *registry.Registry, tasks ...domain.Task) (*Catalog, error) {
	c := &Catalog{
		tasks: make([]domain.Task, 0, len(tasks)),
		index: make(map[string]int, len(tasks)),
	}

	var errs []error
	for i, task := range tasks {
		if task.Name == "" {
			errs = append(errs, fmt.Errorf("task #%d: name is empty", i))
			continue
		}
		if _, dup := c.index[task.Name]; dup {
			errs = append(errs, fmt.Errorf("task %q: duplicate name", task.Name))
			continue
		}
		if err := validateTask(reg, task); err != nil {
			errs = append(errs, err)
			continue
		}
		c.index[task.Name] = len(c.tasks)
		c.tasks = append(c.tasks, task)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

func validateTask(reg *registry.Registry, task domain.Task) error {
	var errs []error
	if !task.Difficulty.Valid() {
		errs = append(errs, fmt.Errorf("%w: %d", domain.ErrInvalidDifficulty, int(task.Difficulty)))
	}
	if !reg.HasSetup(task.SetupName()) {
		errs = append(errs, fmt.Errorf("%w: %s", domain.ErrUnknownSetup, task.SetupName()))
	}

	seen := make(map[string]bool, len(task.Steps))
	for i, step := range task.Steps {
		if step.Name == "" {
			errs = append(errs, fmt.Errorf("step #%d: name is empty", i))
			continue
		}
		if seen[step.Name] {
			errs = append(errs, fmt.Errorf("step %q: duplicate name", step.Name))
		}
		seen[step.Name] = true

		for _, check := range step.Checks {
			if err := reg.ValidateCheck(check); err != nil {
				errs = append(errs, fmt.Errorf("step %q: %w", step.Name, err))
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("task %q: %w", task.Name, err)
	}
	return nil
}

// List returns the names of tasks of exactly the given difficulty, in catalog order.
func (c *Catalog) List(difficulty domain.Difficulty) []string {
	names := []string{}
	for _, t := range c.tasks {
		if t.Difficulty == difficulty {
			names = append(names, t.Name)
		}
	}
	return names
}

// Find returns the task with the exact name.
func (c *Catalog) Find(name string) (domain.Task, bool) {
	i, ok := c.index[name]
	if !ok {
		return domain.Task{}, false
	}
	return c.tasks[i], true
}

// Tasks returns every task in catalog order.
func (c *Catalog) Tasks() []domain.Task {
	return slices.Clone(c.tasks)
}

// Len returns the number of tasks.
func (c *Catalog) Len() int {
	return len(c.tasks)
}
