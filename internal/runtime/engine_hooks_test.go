package runtime_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/quest/internal/runtime"
	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/adapters/scene"
	"github.com/aretw0/quest/pkg/catalog"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	reg := registry.Default()
	cat, err := catalog.Default(reg)
	require.NoError(t, err)
	sc := scene.New()

	var loaded []*domain.TaskEvent
	var checked []*domain.StepEvent
	hooks := domain.LifecycleHooks{
		OnTaskLoaded: func(ctx context.Context, e *domain.TaskEvent) {
			loaded = append(loaded, e)
		},
		OnStepChecked: func(ctx context.Context, e *domain.StepEvent) {
			checked = append(checked, e)
		},
	}
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	engine := runtime.NewEngine(cat, reg, sc, memory.NewStore(),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithClock(func() time.Time { return fixed }),
	)
	ctx := context.Background()

	require.NoError(t, engine.LoadTask(ctx, catalog.TaskDestroyTraffiq))
	_, err = engine.CheckCurrentStep(ctx)
	require.NoError(t, err)
	require.NoError(t, sc.RemoveObject("Cube"))
	_, err = engine.CheckCurrentStep(ctx)
	require.NoError(t, err)
	_, err = engine.CheckCurrentStep(ctx)
	require.NoError(t, err)

	require.Len(t, loaded, 1)
	assert.Equal(t, catalog.TaskDestroyTraffiq, loaded[0].TaskName)
	assert.Equal(t, domain.Medium, loaded[0].Difficulty)
	assert.Equal(t, fixed, loaded[0].Timestamp)

	require.Len(t, checked, 3)
	assert.Equal(t, domain.OutcomeNotSatisfied, checked[0].Outcome)
	assert.Equal(t, "Remove Default Cube", checked[0].StepName)
	assert.False(t, checked[0].Finished)

	assert.Equal(t, domain.OutcomeAdvanced, checked[1].Outcome)
	assert.Equal(t, 1, checked[1].Cursor)
	assert.True(t, checked[1].Finished)

	assert.Equal(t, domain.OutcomeAlreadyFinished, checked[2].Outcome)
	assert.Equal(t, domain.EventStepChecked, checked[2].Type)
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{OnTaskLoaded: func(context.Context, *domain.TaskEvent) { order = append(order, "a") }}
	b := domain.LifecycleHooks{OnTaskLoaded: func(context.Context, *domain.TaskEvent) { order = append(order, "b") }}

	merged := a.Merge(b)
	merged.OnTaskLoaded(context.Background(), &domain.TaskEvent{})
	merged.OnStepChecked(context.Background(), &domain.StepEvent{})

	assert.Equal(t, []string{"a", "b"}, order)
}
