package dsl

import (
	"fmt"

	"github.com/aretw0/quest/pkg/domain"
)

// TaskBuilder provides a fluent API for configuring a task.
type TaskBuilder struct {
	task    domain.Task
	builder *Builder
	errs    []error
}

// Describe sets the task description.
func (t *TaskBuilder) Describe(description string) *TaskBuilder {
	t.task.Description = description
	return t
}

// Difficulty sets the tier the task is listed under.
func (t *TaskBuilder) Difficulty(d domain.Difficulty) *TaskBuilder {
	t.task.Difficulty = d
	return t
}

// Setup names the scene-preparation action run when the task starts.
func (t *TaskBuilder) Setup(name string) *TaskBuilder {
	t.task.Setup = name
	return t
}

// Step appends a step and returns its builder.
func (t *TaskBuilder) Step(name, description string) *StepBuilder {
	t.task.Steps = append(t.task.Steps, domain.Step{
		Name:        name,
		Description: description,
	})
	return &StepBuilder{task: t, index: len(t.task.Steps) - 1}
}

// Build returns a copy of the underlying domain.Task.
func (t *TaskBuilder) Build() domain.Task {
	out := t.task
	out.Steps = make([]domain.Step, len(t.task.Steps))
	for i, s := range t.task.Steps {
		s.Checks = append([]domain.Check(nil), s.Checks...)
		out.Steps[i] = s
	}
	return out
}

// StepBuilder provides a fluent API for attaching checks to a step.
type StepBuilder struct {
	task  *TaskBuilder
	index int
}

// Check appends a check reference to the step.
func (s *StepBuilder) Check(name string, args Args) *StepBuilder {
	if name == "" {
		s.task.errs = append(s.task.errs, fmt.Errorf("task %q step %d: check name is empty", s.task.task.Name, s.index))
		return s
	}
	step := &s.task.task.Steps[s.index]
	step.Checks = append(step.Checks, domain.Check{Name: name, Args: args})
	return s
}

// Step appends the next step to the same task.
func (s *StepBuilder) Step(name, description string) *StepBuilder {
	return s.task.Step(name, description)
}

// Done returns to the task builder.
func (s *StepBuilder) Done() *TaskBuilder {
	return s.task
}
