package domain_test

import (
	"testing"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTask() domain.Task {
	return domain.Task{
		Name:        "Sample",
		Description: "A sample",
		Difficulty:  domain.Beginner,
		Steps: []domain.Step{
			{Name: "one", Description: "first"},
			{Name: "two", Description: "second"},
		},
	}
}

func TestNewProgress(t *testing.T) {
	p := domain.NewProgress(sampleTask())

	assert.Equal(t, "Sample", p.Name)
	assert.Equal(t, 0, p.CurrentStep)
	require.Len(t, p.Steps, 2)
	assert.Equal(t, domain.StepDescriptor{Name: "two", Description: "second"}, p.Steps[1])
	assert.False(t, p.IsEmpty())
	assert.False(t, p.IsFinished())

	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "one", cur.Name)
}

func TestProgress_Finished(t *testing.T) {
	p := domain.NewProgress(sampleTask())
	p.CurrentStep = 2

	assert.True(t, p.IsFinished())
	_, ok := p.Current()
	assert.False(t, ok)
}

func TestProgress_Empty(t *testing.T) {
	var p domain.Progress
	assert.True(t, p.IsEmpty())
	// An empty record has no steps, so its cursor is already at the end.
	assert.True(t, p.IsFinished())
}

func TestProgress_ZeroStepTask(t *testing.T) {
	p := domain.NewProgress(domain.Task{Name: "Nothing"})
	assert.True(t, p.IsFinished())
}

func TestSettings_Clone(t *testing.T) {
	s := &domain.Settings{Progress: domain.NewProgress(sampleTask()), Difficulty: domain.Medium}
	c := s.Clone()
	c.Progress.Steps[0].Name = "changed"

	assert.Equal(t, "one", s.Progress.Steps[0].Name)
	assert.Equal(t, domain.Medium, c.Difficulty)
}

func TestTask_SetupName(t *testing.T) {
	assert.Equal(t, domain.DefaultSetup, sampleTask().SetupName())
	assert.Equal(t, "empty", domain.Task{Setup: "empty"}.SetupName())
}
