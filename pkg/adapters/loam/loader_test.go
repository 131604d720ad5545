package loam

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quest/pkg/domain"
)

const tidyUp = `---
name: Tidy Up
difficulty: medium
setup: baseline
steps:
  - name: Remove the light
    description: Select the Light and press Delete.
    checks:
      - name: object_absent
        args:
          object: Light
  - name: Remove the camera
    description: Select the Camera and press Delete.
    checks:
      - name: object_absent
        args:
          object: Camera
---
Clear the default scene before modelling.
`

const unnamed = `---
difficulty: beginner
steps:
  - name: Look around
    description: Nothing to do.
---
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestLoader_Tasks(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b-tidy.md":    tidyUp,
		"a-unnamed.md": unnamed,
		"other.yaml":   "name: Not markdown\n",
	})

	loader, err := Open(dir)
	require.NoError(t, err)

	tasks, err := loader.Tasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "a-unnamed", tasks[0].Name, "name falls back to the file name")
	assert.Equal(t, domain.Beginner, tasks[0].Difficulty)
	assert.Empty(t, tasks[0].Description)

	tidy := tasks[1]
	assert.Equal(t, "Tidy Up", tidy.Name)
	assert.Equal(t, domain.Medium, tidy.Difficulty)
	assert.Equal(t, "baseline", tidy.Setup)
	assert.Equal(t, "Clear the default scene before modelling.", tidy.Description)
	require.Len(t, tidy.Steps, 2)
	assert.Equal(t, "Remove the camera", tidy.Steps[1].Name)
	require.Len(t, tidy.Steps[0].Checks, 1)
	assert.Equal(t, "object_absent", tidy.Steps[0].Checks[0].Name)
	assert.Equal(t, "Light", tidy.Steps[0].Checks[0].Args["object"])
}

func TestLoader_Task(t *testing.T) {
	dir := writeFiles(t, map[string]string{"tidy.md": tidyUp})

	loader, err := Open(dir)
	require.NoError(t, err)

	task, err := loader.Task(context.Background(), "tidy.md")
	require.NoError(t, err)
	assert.Equal(t, "Tidy Up", task.Name)
}

func TestLoader_InvalidDifficulty(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.md": "---\nname: Bad\ndifficulty: legendary\n---\n",
	})

	loader, err := Open(dir)
	require.NoError(t, err)

	_, err = loader.Tasks(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}
