package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSettingsStoreContract runs a suite of tests to verify that a SettingsStore implementation
// adheres to the defined interface contract.
func RunSettingsStoreContract(t *testing.T, store SettingsStore) {
	ctx := context.Background()
	document := "contract-test-document-" + time.Now().Format("20060102150405")

	task := domain.Task{
		Name:        "Contract Task",
		Description: "Exercises the store",
		Difficulty:  domain.Medium,
		Steps: []domain.Step{
			{Name: "first", Description: "Do the first thing"},
			{Name: "second", Description: "Do the second thing"},
		},
	}

	t.Run("Save and Load", func(t *testing.T) {
		settings := &domain.Settings{Progress: domain.NewProgress(task), Difficulty: domain.Guru}
		settings.Progress.CurrentStep = 1

		err := store.Save(ctx, document, settings)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, document)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, "Contract Task", loaded.Progress.Name)
		assert.Equal(t, "Exercises the store", loaded.Progress.Description)
		assert.Equal(t, 1, loaded.Progress.CurrentStep)
		assert.Equal(t, domain.Guru, loaded.Difficulty)
		require.Len(t, loaded.Progress.Steps, 2)
		assert.Equal(t, "second", loaded.Progress.Steps[1].Name)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		err := store.Save(ctx, document, domain.NewSettings())
		require.NoError(t, err)

		loaded, err := store.Load(ctx, document)
		require.NoError(t, err)
		assert.True(t, loaded.Progress.IsEmpty(), "Second save should replace the first one")
		assert.Equal(t, domain.Beginner, loaded.Difficulty)
	})

	t.Run("Loaded Copy Is Detached", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, document, &domain.Settings{Progress: domain.NewProgress(task)}))

		loaded, err := store.Load(ctx, document)
		require.NoError(t, err)
		loaded.Progress.CurrentStep = 2

		again, err := store.Load(ctx, document)
		require.NoError(t, err)
		assert.Equal(t, 0, again.Progress.CurrentStep, "Mutating a loaded record must not change the stored one")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+document)
		assert.ErrorIs(t, err, domain.ErrSettingsNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, document, domain.NewSettings())
		require.NoError(t, err)

		err = store.Delete(ctx, document)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, document)
		assert.ErrorIs(t, err, domain.ErrSettingsNotFound, "Load after Delete should return ErrSettingsNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := document + "-1"
		id2 := document + "-2"
		_ = store.Save(ctx, id1, domain.NewSettings())
		_ = store.Save(ctx, id2, domain.NewSettings())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		documents, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, documents, id1)
		assert.Contains(t, documents, id2)
	})
}
