package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/quest/pkg/domain"
)

// Args holds the arguments of a check reference.
type Args = map[string]any

// Builder manages the catalog construction. Tasks keep their insertion order.
type Builder struct {
	tasks []*TaskBuilder
	index map[string]*TaskBuilder
}

// New creates a new task builder.
func New() *Builder {
	return &Builder{
		index: make(map[string]*TaskBuilder),
	}
}

// Task starts the definition of a task.
// If the task already exists, it returns the existing builder.
func (b *Builder) Task(name string) *TaskBuilder {
	if tb, ok := b.index[name]; ok {
		return tb
	}
	tb := &TaskBuilder{
		task: domain.Task{
			Name:       name,
			Difficulty: domain.DefaultDifficulty,
		},
		builder: b,
	}
	b.index[name] = tb
	b.tasks = append(b.tasks, tb)
	return tb
}

// Build returns the defined tasks in insertion order.
// It fails if any builder recorded a misuse (e.g. a check without a name).
func (b *Builder) Build() ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(b.tasks))
	var errs []error
	for _, tb := range b.tasks {
		errs = append(errs, tb.errs...)
		tasks = append(tasks, tb.Build())
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid task definitions: %w", err)
	}
	return tasks, nil
}
