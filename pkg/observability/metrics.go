package observability

import (
	"context"
	"errors"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine counters on a private registry.
type Metrics struct {
	registry       *prometheus.Registry
	tasksLoaded    *prometheus.CounterVec
	stepChecks     *prometheus.CounterVec
	tasksCompleted *prometheus.CounterVec
	storeOps       *prometheus.CounterVec
}

// NewMetrics creates and registers the engine counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		tasksLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quest_tasks_loaded_total",
				Help: "Total number of task (re)starts",
			},
			[]string{"task", "difficulty"},
		),
		stepChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quest_step_checks_total",
				Help: "Total number of step submissions by outcome",
			},
			[]string{"task", "outcome"},
		),
		tasksCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quest_tasks_completed_total",
				Help: "Total number of tasks whose last step was validated",
			},
			[]string{"task"},
		),
		storeOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quest_store_operations_total",
				Help: "Total number of settings store calls by operation and result",
			},
			[]string{"op", "result"},
		),
	}
	m.registry.MustRegister(m.tasksLoaded, m.stepChecks, m.tasksCompleted, m.storeOps)
	return m
}

// Gatherer exposes the registry for rendering.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// TasksLoaded returns the counter for one task and tier.
func (m *Metrics) TasksLoaded(task string, d domain.Difficulty) prometheus.Counter {
	return m.tasksLoaded.WithLabelValues(task, d.String())
}

// StepChecks returns the counter for one task and outcome.
func (m *Metrics) StepChecks(task string, o domain.Outcome) prometheus.Counter {
	return m.stepChecks.WithLabelValues(task, o.String())
}

// TasksCompleted returns the completion counter for one task.
func (m *Metrics) TasksCompleted(task string) prometheus.Counter {
	return m.tasksCompleted.WithLabelValues(task)
}

// StoreOperations returns the counter for one store operation and result.
func (m *Metrics) StoreOperations(op, result string) prometheus.Counter {
	return m.storeOps.WithLabelValues(op, result)
}

// ObserveStore records the result of a settings store call.
// A missing record is counted as not_found, not as an error.
func (m *Metrics) ObserveStore(op string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, domain.ErrSettingsNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	m.StoreOperations(op, result).Inc()
}

// Hooks returns lifecycle hooks that record engine events.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTaskLoaded: func(ctx context.Context, e *domain.TaskEvent) {
			m.TasksLoaded(e.TaskName, e.Difficulty).Inc()
		},
		OnStepChecked: func(ctx context.Context, e *domain.StepEvent) {
			m.StepChecks(e.TaskName, e.Outcome).Inc()
			if e.Outcome == domain.OutcomeAdvanced && e.Finished {
				m.TasksCompleted(e.TaskName).Inc()
			}
		},
	}
}
