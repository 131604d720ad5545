package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTaskLoaded  EventType = "task_loaded"
	EventStepChecked EventType = "step_checked"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TaskEvent is emitted after a task has been (re)loaded.
type TaskEvent struct {
	EventBase
	TaskName   string     `json:"task_name"`
	Difficulty Difficulty `json:"difficulty"`
	Steps      int        `json:"steps"`
}

// StepEvent is emitted after the current step has been checked.
type StepEvent struct {
	EventBase
	TaskName string  `json:"task_name"`
	StepName string  `json:"step_name,omitempty"`
	Cursor   int     `json:"cursor"`
	Outcome  Outcome `json:"outcome"`
	Finished bool    `json:"finished"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTaskLoaded  func(context.Context, *TaskEvent)
	OnStepChecked func(context.Context, *StepEvent)
}

// Merge combines two hook sets so that both are invoked, h first.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTaskLoaded: func(ctx context.Context, e *TaskEvent) {
			if h.OnTaskLoaded != nil {
				h.OnTaskLoaded(ctx, e)
			}
			if other.OnTaskLoaded != nil {
				other.OnTaskLoaded(ctx, e)
			}
		},
		OnStepChecked: func(ctx context.Context, e *StepEvent) {
			if h.OnStepChecked != nil {
				h.OnStepChecked(ctx, e)
			}
			if other.OnStepChecked != nil {
				other.OnStepChecked(ctx, e)
			}
		},
	}
}
