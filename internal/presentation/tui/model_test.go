package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quest"
	"github.com/aretw0/quest/internal/adapters/clipboard"
	"github.com/aretw0/quest/internal/commands"
	"github.com/aretw0/quest/internal/presentation/panel"
	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/adapters/scene"
	"github.com/aretw0/quest/pkg/catalog"
	"github.com/aretw0/quest/pkg/domain"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drive sends msg and then feeds the settings refreshes produced by the
// returned commands back into the model.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for cmd != nil {
		refreshed, ok := cmd().(refreshedMsg)
		if !ok {
			break
		}
		next, cmd = m.Update(refreshed)
		m = next.(Model)
	}
	return m
}

func newModel(t *testing.T, opts ...Option) (Model, *quest.Engine, *scene.Scene) {
	t.Helper()
	doc := scene.New()
	eng, err := quest.New(quest.WithScene(doc))
	require.NoError(t, err)

	m := New(context.Background(), eng, opts...)
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	refreshed, ok := m.Init()().(refreshedMsg)
	require.True(t, ok)
	m = drive(t, m, refreshed)
	return m, eng, doc
}

// gatedStore blocks the first Save after arm until release is closed.
type gatedStore struct {
	*memory.Store
	mu      sync.Mutex
	armed   bool
	entered chan struct{}
	release chan struct{}
}

func newGatedStore() *gatedStore {
	return &gatedStore{
		Store:   memory.NewStore(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *gatedStore) arm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armed = true
}

func (s *gatedStore) Save(ctx context.Context, document string, settings *domain.Settings) error {
	s.mu.Lock()
	gated := s.armed
	s.armed = false
	s.mu.Unlock()
	if gated {
		close(s.entered)
		<-s.release
	}
	return s.Store.Save(ctx, document, settings)
}

func TestModel_Init_ListsBeginnerTasks(t *testing.T) {
	m, _, _ := newModel(t)

	assert.Equal(t, []string{catalog.TaskRedMonkey}, m.panel.Tasks)
	assert.False(t, m.panel.Loaded)
	assert.Contains(t, m.View(), catalog.TaskRedMonkey)
	assert.Contains(t, m.View(), commands.MsgNoTask)
}

func TestModel_StartTask(t *testing.T) {
	m, eng, _ := newModel(t)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, m.panel.Loaded)
	assert.Equal(t, catalog.TaskRedMonkey, m.panel.TaskName)
	assert.Equal(t, focusSteps, m.focus)
	assert.Empty(t, m.notices)

	settings, err := eng.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.TaskRedMonkey, settings.Progress.Name)

	view := m.View()
	assert.Contains(t, view, "Your Task: "+catalog.TaskRedMonkey)
	assert.Contains(t, view, "□□□□□□□□□□ 0/5")
}

func TestModel_SubmitNotSatisfied_ShowsNotice(t *testing.T) {
	m, _, _ := newModel(t)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = drive(t, m, keyRunes("s"))

	require.Len(t, m.notices, 1)
	assert.Equal(t, commands.TitleNotYet, m.notices[0].Title)
	assert.Equal(t, domain.NoticeError, m.notices[0].Level)
	assert.Contains(t, m.View(), commands.MsgTryAgain)
	assert.Equal(t, 0, m.panel.Cursor)

	// keys other than dismiss are swallowed by the notice
	m = drive(t, m, keyRunes("s"))
	assert.Len(t, m.notices, 1)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.notices)
	assert.NotContains(t, m.View(), commands.MsgTryAgain)
}

func TestModel_SubmitAdvances(t *testing.T) {
	m, _, doc := newModel(t)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NoError(t, doc.RemoveObject("Cube"))
	m = drive(t, m, keyRunes("s"))

	assert.Empty(t, m.notices)
	assert.Equal(t, 1, m.panel.Cursor)
	assert.Equal(t, 1, m.stepCursor)
	assert.Equal(t, panel.RowDone, m.panel.Rows[0].State)
	assert.Contains(t, m.View(), "[x] Remove Default Cube")
}

func TestModel_Restart(t *testing.T) {
	m, _, doc := newModel(t)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, doc.RemoveObject("Cube"))
	m = drive(t, m, keyRunes("s"))
	require.Equal(t, 1, m.panel.Cursor)

	m = drive(t, m, keyRunes("r"))

	assert.Equal(t, 0, m.panel.Cursor)
	ok, err := doc.HasObject(context.Background(), "Cube")
	require.NoError(t, err)
	assert.True(t, ok, "restart runs the task setup again")
}

func TestModel_RestartWithoutTask(t *testing.T) {
	m, _, _ := newModel(t)

	m = drive(t, m, keyRunes("r"))

	require.Len(t, m.notices, 1)
	assert.Equal(t, commands.MsgNoTask, m.notices[0].Body)
}

func TestModel_CycleDifficulty(t *testing.T) {
	m, eng, _ := newModel(t)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.Medium, m.panel.Difficulty)
	assert.Equal(t, []string{catalog.TaskDestroyTraffiq}, m.panel.Tasks)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.Guru, m.panel.Difficulty)
	assert.Contains(t, m.View(), "No tasks for this difficulty")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.Medium, m.panel.Difficulty)

	settings, err := eng.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Medium, settings.Difficulty)
}

func TestModel_Hint(t *testing.T) {
	m, _, _ := newModel(t)

	m = drive(t, m, keyRunes("i"))
	require.Len(t, m.notices, 1)
	assert.Equal(t, commands.MsgNoInstructions, m.notices[0].Body)
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = drive(t, m, keyRunes("i"))

	require.Len(t, m.notices, 1)
	assert.Equal(t, commands.TitleHint, m.notices[0].Title)
	assert.Equal(t, "Click Add -> Mesh -> Monkey.", m.notices[0].Body)
}

func TestModel_CopyDiagnostics(t *testing.T) {
	buf := &clipboard.Buffer{}
	doc := scene.New()
	eng, err := quest.New(quest.WithScene(doc))
	require.NoError(t, err)

	m := New(context.Background(), eng, WithClipboard(buf), WithDiagnostics(eng.Diagnostics()))
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = drive(t, m, keyRunes("y"))

	require.Len(t, m.notices, 1)
	assert.Equal(t, domain.NoticeInfo, m.notices[0].Level)
	assert.Equal(t, commands.MsgCopied, m.notices[0].Body)
	assert.True(t, strings.HasPrefix(buf.Text(), "# quest diagnostics"))
}

func TestModel_CopyDiagnostics_NotConfigured(t *testing.T) {
	m, _, _ := newModel(t)

	m = drive(t, m, keyRunes("y"))

	require.Len(t, m.notices, 1)
	assert.Equal(t, domain.NoticeError, m.notices[0].Level)
	assert.Equal(t, commands.TitleDiagnostics, m.notices[0].Title)
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newModel(t)

	_, cmd := m.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_View_TerminalTooSmall(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		expectSmall bool
	}{
		{"exactly minimum size", MinTerminalWidth, MinTerminalHeight, false},
		{"width too small", MinTerminalWidth - 1, MinTerminalHeight, true},
		{"height too small", MinTerminalWidth, MinTerminalHeight - 1, true},
		{"larger than minimum", 100, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newModel(t)
			m = drive(t, m, tea.WindowSizeMsg{Width: tt.width, Height: tt.height})

			view := m.View()
			if tt.expectSmall {
				assert.Contains(t, view, "Terminal too small")
				assert.Contains(t, view, "Minimum:")
			} else {
				assert.NotContains(t, view, "Terminal too small")
			}
		})
	}
}

func TestModel_View_EmptyBeforeResize(t *testing.T) {
	eng, err := quest.New()
	require.NoError(t, err)

	assert.Empty(t, New(context.Background(), eng).View())
}

func TestProgress_View(t *testing.T) {
	assert.Equal(t, "□□□□ 0/4", Progress{Current: 0, Total: 4, Width: 4}.View())
	assert.Equal(t, "■■□□ 2/4", Progress{Current: 2, Total: 4, Width: 4}.View())
	assert.Equal(t, "■■■■ 4/4", Progress{Current: 9, Total: 4, Width: 4}.View())
	assert.Empty(t, Progress{Current: 1, Total: 0, Width: 4}.View())
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()
	assert.NotEmpty(t, k.ShortHelp())
	assert.Len(t, k.FullHelp(), 4)
}

func TestPrintBanner(t *testing.T) {
	var b strings.Builder
	PrintBanner(&b)
	assert.Equal(t, len(bannerLines)+2, strings.Count(b.String(), "\n"))
}

func TestNewRenderer(t *testing.T) {
	out, err := NewRenderer(40)("**bold**")
	require.NoError(t, err)
	assert.Contains(t, out, "bold")
}

func TestModel_CommandsRunOneAtATime(t *testing.T) {
	store := newGatedStore()
	doc := scene.New()
	eng, err := quest.New(quest.WithScene(doc), quest.WithStore(store))
	require.NoError(t, err)

	m := New(context.Background(), eng)
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.panel.Loaded)
	require.NoError(t, doc.RemoveObject("Cube"))

	_, submit := m.Update(keyRunes("s"))
	_, restart := m.Update(keyRunes("r"))
	require.NotNil(t, submit)
	require.NotNil(t, restart)

	store.arm()
	submitDone := make(chan tea.Msg, 1)
	go func() { submitDone <- submit() }()
	<-store.entered

	restartDone := make(chan tea.Msg, 1)
	go func() { restartDone <- restart() }()

	select {
	case <-restartDone:
		t.Fatal("restart finished while submit was still saving")
	case <-time.After(50 * time.Millisecond):
	}
	present, err := doc.HasObject(context.Background(), "Cube")
	require.NoError(t, err)
	assert.False(t, present, "scene must not be reset before submit completes")

	close(store.release)
	<-submitDone
	<-restartDone

	settings, err := eng.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, settings.Progress.CurrentStep)
	present, err = doc.HasObject(context.Background(), "Cube")
	require.NoError(t, err)
	assert.True(t, present)
}
