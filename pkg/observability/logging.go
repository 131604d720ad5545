package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/quest/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that log every engine event at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTaskLoaded: func(ctx context.Context, e *domain.TaskEvent) {
			logger.DebugContext(ctx, "task_loaded",
				"task", e.TaskName,
				"difficulty", e.Difficulty.String(),
				"steps", e.Steps,
			)
		},
		OnStepChecked: func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, "step_checked",
				"task", e.TaskName,
				"step", e.StepName,
				"cursor", e.Cursor,
				"outcome", e.Outcome.String(),
				"finished", e.Finished,
			)
		},
	}
}
