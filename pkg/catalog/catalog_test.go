package catalog_test

import (
	"testing"

	"github.com/aretw0/quest/pkg/catalog"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := catalog.Default(registry.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{catalog.TaskRedMonkey}, c.List(domain.Beginner))
	assert.Equal(t, []string{catalog.TaskDestroyTraffiq}, c.List(domain.Medium))
	assert.Empty(t, c.List(domain.Guru))
	assert.NotNil(t, c.List(domain.Guru), "empty tier lists are empty, not nil")

	monkey, ok := c.Find(catalog.TaskRedMonkey)
	require.True(t, ok)
	assert.Equal(t, "Teaches basics of Blender.", monkey.Description)
	require.Len(t, monkey.Steps, 5)
	assert.Equal(t, "Remove Default Cube", monkey.Steps[0].Name)
	assert.Equal(t, "View result", monkey.Steps[4].Name)

	traffiq, ok := c.Find(catalog.TaskDestroyTraffiq)
	require.True(t, ok)
	assert.Len(t, traffiq.Steps, 1)
}

func TestFind_ExactMatch(t *testing.T) {
	c, err := catalog.Default(registry.Default())
	require.NoError(t, err)

	_, ok := c.Find("red monkey")
	assert.False(t, ok, "lookup is case-sensitive")
	_, ok = c.Find("")
	assert.False(t, ok)
}

func TestNew_Validation(t *testing.T) {
	reg := registry.Default()
	good := domain.Task{Name: "Good", Steps: []domain.Step{{Name: "s"}}}

	tests := []struct {
		name  string
		tasks []domain.Task
		want  string
	}{
		{"empty name", []domain.Task{{}}, "name is empty"},
		{"duplicate task", []domain.Task{good, good}, "duplicate name"},
		{"duplicate step", []domain.Task{{Name: "T", Steps: []domain.Step{{Name: "a"}, {Name: "a"}}}}, `step "a": duplicate name`},
		{"unknown check", []domain.Task{{Name: "T", Steps: []domain.Step{{Name: "a", Checks: []domain.Check{{Name: "nope"}}}}}}, "unknown check"},
		{"bad args", []domain.Task{{Name: "T", Steps: []domain.Step{{Name: "a", Checks: []domain.Check{{Name: registry.CheckObjectPresent}}}}}}, "object is required"},
		{"unknown setup", []domain.Task{{Name: "T", Setup: "studio"}}, "unknown setup"},
		{"bad difficulty", []domain.Task{{Name: "T", Difficulty: domain.Difficulty(9)}}, "invalid difficulty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.New(reg, tt.tasks...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestNew_ReportsAllProblems(t *testing.T) {
	_, err := catalog.New(registry.Default(),
		domain.Task{Name: "A", Setup: "nope"},
		domain.Task{Name: "B", Steps: []domain.Step{{Name: ""}}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSetup)
	assert.ErrorContains(t, err, `task "B"`)
}

func TestTasks_IsACopy(t *testing.T) {
	c, err := catalog.Default(registry.Default())
	require.NoError(t, err)

	tasks := c.Tasks()
	tasks[0].Name = "changed"

	_, ok := c.Find(catalog.TaskRedMonkey)
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}
