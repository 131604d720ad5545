package quest_test

import (
	"context"
	"testing"

	"github.com/aretw0/quest"
	"github.com/aretw0/quest/internal/adapters/file"
	"github.com/aretw0/quest/pkg/adapters/scene"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Integration(t *testing.T) {
	sc := scene.New()
	store := file.New(t.TempDir())
	metrics := observability.NewMetrics()

	eng, err := quest.New(
		quest.WithScene(sc),
		quest.WithStore(store),
		quest.WithDocument("shot-010"),
		quest.WithMetrics(metrics),
	)
	require.NoError(t, err)
	ctx := context.Background()

	names, err := eng.AvailableTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Red Monkey"}, names)

	require.NoError(t, eng.SetDifficulty(ctx, domain.Medium))
	names, err = eng.AvailableTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Destroy traffiq vehicle"}, names)

	require.NoError(t, eng.LoadTask(ctx, "Destroy traffiq vehicle"))
	require.NoError(t, sc.RemoveObject("Cube"))

	outcome, err := eng.CheckCurrentStep(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAdvanced, outcome)

	// A second engine on the same store sees the persisted record.
	other, err := quest.New(quest.WithStore(store), quest.WithDocument("shot-010"))
	require.NoError(t, err)
	settings, err := other.Settings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.Progress.IsFinished())
	assert.Equal(t, domain.Medium, settings.Difficulty)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.TasksCompleted("Destroy traffiq vehicle")))

	dump, err := eng.Diagnostics().Dump(ctx)
	require.NoError(t, err)
	assert.Contains(t, dump, "status: finished")
	assert.NotContains(t, dump, "shot-010", "document keys are never part of the dump")
}

func TestNew_ExtraTasks(t *testing.T) {
	eng, err := quest.New(quest.WithTasks(domain.Task{Name: "Guru Only", Difficulty: domain.Guru}))
	require.NoError(t, err)

	_, ok := eng.Catalog().Find("Guru Only")
	assert.True(t, ok)
	assert.Equal(t, "default", eng.Document())
}

func TestNew_InvalidTasks(t *testing.T) {
	_, err := quest.New(quest.WithTasks(domain.Task{Name: "Red Monkey"}))
	assert.ErrorContains(t, err, "duplicate name")
}

func TestLifecycleHooksAreCalled(t *testing.T) {
	var loaded []string
	eng, err := quest.New(quest.WithLifecycleHooks(domain.LifecycleHooks{
		OnTaskLoaded: func(ctx context.Context, e *domain.TaskEvent) {
			loaded = append(loaded, e.TaskName)
		},
	}))
	require.NoError(t, err)

	require.NoError(t, eng.LoadTask(context.Background(), "Red Monkey"))
	assert.Equal(t, []string{"Red Monkey"}, loaded)
}
