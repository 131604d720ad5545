package dsl_test

import (
	"testing"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleTask(t *testing.T) {
	b := dsl.New()

	b.Task("Shapes").
		Describe("Play with shapes").
		Difficulty(domain.Medium).
		Setup("empty").
		Step("Add cube", "Add a cube.").
		Check("object_present", dsl.Args{"object": "Cube"}).
		Step("Add sphere", "Add a sphere.").
		Check("object_present", dsl.Args{"object": "Sphere"}).
		Check("object_present", dsl.Args{"object": "Cube"})

	b.Task("Second")

	tasks, err := b.Build()
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	shapes := tasks[0]
	assert.Equal(t, "Shapes", shapes.Name)
	assert.Equal(t, "Play with shapes", shapes.Description)
	assert.Equal(t, domain.Medium, shapes.Difficulty)
	assert.Equal(t, "empty", shapes.Setup)
	require.Len(t, shapes.Steps, 2)
	assert.Len(t, shapes.Steps[0].Checks, 1)
	assert.Len(t, shapes.Steps[1].Checks, 2)
	assert.Equal(t, "Sphere", shapes.Steps[1].Checks[0].Args["object"])

	assert.Equal(t, domain.DefaultDifficulty, tasks[1].Difficulty)
	assert.Empty(t, tasks[1].Steps)
}

func TestBuilder_TaskIsReused(t *testing.T) {
	b := dsl.New()
	b.Task("Same").Describe("first")
	b.Task("Same").Step("s", "")

	tasks, err := b.Build()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "first", tasks[0].Description)
	assert.Len(t, tasks[0].Steps, 1)
}

func TestBuilder_EmptyCheckName(t *testing.T) {
	b := dsl.New()
	b.Task("Broken").Step("s", "").Check("", nil)

	_, err := b.Build()
	assert.ErrorContains(t, err, "check name is empty")
}

func TestBuilder_BuildIsDetached(t *testing.T) {
	b := dsl.New()
	tb := b.Task("T")
	tb.Step("s", "").Check("object_present", dsl.Args{"object": "Cube"})

	built := tb.Build()
	built.Steps[0].Checks[0].Name = "changed"

	again := tb.Build()
	assert.Equal(t, "object_present", again.Steps[0].Checks[0].Name)
}
