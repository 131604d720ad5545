package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quest/internal/presentation/panel"
	"github.com/aretw0/quest/pkg/catalog"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/registry"
)

func buildPanel(t *testing.T, cursor int) panel.Panel {
	t.Helper()
	c, err := catalog.Default(registry.Default())
	require.NoError(t, err)

	task, ok := c.Find(catalog.TaskRedMonkey)
	require.True(t, ok)
	s := domain.NewSettings()
	s.Progress = domain.NewProgress(task)
	s.Progress.CurrentStep = cursor
	return panel.Build(c, s)
}

func TestRenderPanel_Checklist(t *testing.T) {
	var buf bytes.Buffer
	RenderPanel(&buf, buildPanel(t, 1))
	out := buf.String()

	assert.Contains(t, out, "Difficulty: Beginner")
	assert.Contains(t, out, "  - Red Monkey")
	assert.Contains(t, out, "Your Task: Red Monkey")
	assert.Contains(t, out, "[x] 1. Remove Default Cube")
	assert.Contains(t, out, "[>] 2. Spawn Monkey  <- current")
	assert.Contains(t, out, "[ ] 3. Add material MonkeyMaterial")
	assert.Contains(t, out, "1/5")
	assert.NotContains(t, out, "finished")
}

func TestRenderPanel_Finished(t *testing.T) {
	var buf bytes.Buffer
	RenderPanel(&buf, buildPanel(t, 5))

	assert.Contains(t, buf.String(), "5/5  finished")
	assert.NotContains(t, buf.String(), "<- current")
}

func TestRenderPanel_NoTask(t *testing.T) {
	c, err := catalog.Default(registry.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderPanel(&buf, panel.Build(c, nil))

	assert.Contains(t, buf.String(), "No task loaded")
	assert.NotContains(t, buf.String(), "Your Task:")
}

func TestNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf)

	n.Notify(domain.Notice{Title: "Not yet!", Body: "Try one more time!", Level: domain.NoticeError})
	n.Notify(domain.Notice{Title: "Hint!", Body: "Press Delete.", Level: domain.NoticeInfo})

	assert.Equal(t, "Not yet!\nTry one more time!\nHint!\nPress Delete.\n", buf.String())
	assert.Equal(t, 1, n.Errors())
}

func TestNotifier_WithMarkdown(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf, WithMarkdown(func(s string) (string, error) {
		return "\n" + strings.ToUpper(s) + "\n\n", nil
	}))

	n.Notify(domain.Notice{Title: "Hint!", Body: "spawn a monkey"})

	assert.Equal(t, "Hint!\nSPAWN A MONKEY\n", buf.String())
}
