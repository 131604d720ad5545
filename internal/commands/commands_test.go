package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/quest"
	"github.com/aretw0/quest/internal/adapters/clipboard"
	"github.com/aretw0/quest/internal/commands"
	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/adapters/scene"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	notices []domain.Notice
}

func (r *recorder) Notify(n domain.Notice) {
	r.notices = append(r.notices, n)
}

func (r *recorder) last(t *testing.T) domain.Notice {
	t.Helper()
	require.NotEmpty(t, r.notices)
	return r.notices[len(r.notices)-1]
}

type fixture struct {
	handler *commands.Handler
	notices *recorder
	scene   *scene.Scene
	store   *memory.Store
	board   *clipboard.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{notices: &recorder{}, scene: scene.New(), store: memory.NewStore(), board: &clipboard.Buffer{}}
	eng, err := quest.New(quest.WithScene(f.scene), quest.WithStore(f.store))
	require.NoError(t, err)
	f.handler = commands.New(eng, f.notices,
		commands.WithClipboard(f.board),
		commands.WithDiagnostics(eng.Diagnostics()),
	)
	return f
}

func TestStartTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.True(t, f.handler.StartTask(ctx, "Red Monkey"))
	assert.Empty(t, f.notices.notices)

	assert.False(t, f.handler.StartTask(ctx, "Blue Whale"))
	n := f.notices.last(t)
	assert.Equal(t, domain.NoticeError, n.Level)
	assert.Equal(t, "Task 'Blue Whale' was not loaded successfully, does it exist?", n.Body)
}

func TestRestartTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.False(t, f.handler.RestartTask(ctx))
	assert.Equal(t, commands.MsgNoTask, f.notices.last(t).Body)

	require.True(t, f.handler.StartTask(ctx, "Red Monkey"))
	require.NoError(t, f.scene.RemoveObject("Cube"))
	require.Equal(t, domain.OutcomeAdvanced, f.handler.SubmitStep(ctx))

	assert.True(t, f.handler.RestartTask(ctx))
	s, err := f.store.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Progress.CurrentStep)
	ok, _ := f.scene.HasObject(ctx, "Cube")
	assert.True(t, ok, "restart prepares the scene again")
}

func TestSubmitStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, domain.OutcomeAlreadyFinished, f.handler.SubmitStep(ctx))
	assert.Equal(t, domain.Notice{Title: commands.TitleNoTask, Body: commands.MsgNoTask, Level: domain.NoticeInfo}, f.notices.last(t))

	require.True(t, f.handler.StartTask(ctx, "Destroy traffiq vehicle"))

	assert.Equal(t, domain.OutcomeNotSatisfied, f.handler.SubmitStep(ctx))
	assert.Equal(t, domain.Notice{Title: "Not yet!", Body: "Try one more time!", Level: domain.NoticeError}, f.notices.last(t))

	require.NoError(t, f.scene.RemoveObject("Cube"))
	assert.Equal(t, domain.OutcomeAdvanced, f.handler.SubmitStep(ctx))
	done := f.notices.last(t)
	assert.Equal(t, commands.TitleDone, done.Title)
	assert.Contains(t, done.Body, "Destroy traffiq vehicle")

	count := len(f.notices.notices)
	assert.Equal(t, domain.OutcomeAlreadyFinished, f.handler.SubmitStep(ctx))
	assert.Len(t, f.notices.notices, count, "finished tasks submit silently")
}

func TestSubmitStep_StepNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, "default", &domain.Settings{
		Progress: domain.NewProgress(domain.Task{Name: "Red Monkey", Steps: []domain.Step{{Name: "Renamed"}}}),
	}))

	assert.Equal(t, domain.OutcomeStepNotFound, f.handler.SubmitStep(ctx))
	assert.Equal(t, "Couldn't retrieve current step!", f.notices.last(t).Body)
}

func TestShowHint(t *testing.T) {
	f := newFixture(t)

	f.handler.ShowHint("", "")
	assert.Equal(t, domain.Notice{Title: "Hint!", Body: "No instructions", Level: domain.NoticeInfo}, f.notices.last(t))

	f.handler.ShowHint("Select default cube and press Delete.", "Remove Default Cube")
	assert.Equal(t, "Remove Default Cube", f.notices.last(t).Title)
}

func TestCopyDiagnostics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.True(t, f.handler.CopyDiagnostics(ctx))
	assert.Contains(t, f.board.Text(), "# quest diagnostics")
	assert.Equal(t, commands.MsgCopied, f.notices.last(t).Body)
}

type brokenClipboard struct{}

func (brokenClipboard) WriteAll(string) error { return errors.New("no display") }

type staticDiagnostics string

func (s staticDiagnostics) Dump(context.Context) (string, error) { return string(s), nil }

var _ ports.Diagnostics = staticDiagnostics("")

func TestCopyDiagnostics_Failures(t *testing.T) {
	eng, err := quest.New()
	require.NoError(t, err)
	ctx := context.Background()

	rec := &recorder{}
	h := commands.New(eng, rec)
	assert.False(t, h.CopyDiagnostics(ctx))
	assert.Equal(t, domain.NoticeError, rec.last(t).Level)

	h = commands.New(eng, rec, commands.WithClipboard(brokenClipboard{}), commands.WithDiagnostics(staticDiagnostics("dump")))
	assert.False(t, h.CopyDiagnostics(ctx))
	assert.Contains(t, rec.last(t).Body, "no display")
}
