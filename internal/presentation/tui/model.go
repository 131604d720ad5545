// Package tui renders the tutorial side panel in the terminal with Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/quest/internal/commands"
	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/internal/presentation/panel"
	"github.com/aretw0/quest/pkg/catalog"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
)

// Minimum terminal dimensions for the panel layout.
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

const progressWidth = 10

// Engine is the part of the quest engine the panel drives.
type Engine interface {
	commands.Engine
	SetDifficulty(ctx context.Context, d domain.Difficulty) error
	Catalog() *catalog.Catalog
}

type focusArea int

const (
	focusTasks focusArea = iota
	focusSteps
)

// inbox collects the notices raised while a command runs.
type inbox struct {
	mu      sync.Mutex
	notices []domain.Notice
}

func (b *inbox) Notify(n domain.Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, n)
}

func (b *inbox) drain() []domain.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	b.notices = nil
	return out
}

// refreshedMsg carries the settings read after a command.
type refreshedMsg struct {
	settings *domain.Settings
	notices  []domain.Notice
	err      error
}

// Option configures the Model.
type Option func(*Model)

// WithClipboard sets the clipboard used to copy diagnostics.
func WithClipboard(c ports.Clipboard) Option {
	return func(m *Model) {
		m.cmdOpts = append(m.cmdOpts, commands.WithClipboard(c))
	}
}

// WithDiagnostics sets the diagnostics source.
func WithDiagnostics(d ports.Diagnostics) Option {
	return func(m *Model) {
		m.cmdOpts = append(m.cmdOpts, commands.WithDiagnostics(d))
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithRenderer sets the markdown renderer used for notice bodies.
func WithRenderer(render func(string) (string, error)) Option {
	return func(m *Model) {
		m.render = render
	}
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// Model is the side panel. It keeps only cursor and notice state;
// everything else is rebuilt from the persisted settings.
type Model struct {
	ctx     context.Context
	engine  Engine
	handler *commands.Handler
	inbox   *inbox
	serial  *sync.Mutex
	logger  *slog.Logger
	render  func(string) (string, error)
	keys    KeyMap
	help    help.Model
	cmdOpts []commands.Option

	panel      panel.Panel
	focus      focusArea
	taskCursor int
	stepCursor int
	notices    []domain.Notice
	err        error

	width  int
	height int
}

// New creates the panel model.
func New(ctx context.Context, engine Engine, opts ...Option) Model {
	m := Model{
		ctx:    ctx,
		engine: engine,
		inbox:  &inbox{},
		serial: &sync.Mutex{},
		logger: logging.NewNop(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.handler = commands.New(engine, m.inbox, append(m.cmdOpts, commands.WithLogger(m.logger))...)
	m.panel = panel.Build(engine.Catalog(), nil)
	return m
}

// Run starts the panel program and blocks until the user quits.
func Run(ctx context.Context, engine Engine, opts ...Option) error {
	p := tea.NewProgram(
		New(ctx, engine, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.run(nil)
}

// run executes action off the update loop and re-reads the settings.
// The serial lock is held from action to refresh so commands reach the
// settings record one at a time.
func (m Model) run(action func(ctx context.Context)) tea.Cmd {
	ctx, engine, box, serial := m.ctx, m.engine, m.inbox, m.serial
	return func() tea.Msg {
		serial.Lock()
		defer serial.Unlock()
		if action != nil {
			action(ctx)
		}
		settings, err := engine.Settings(ctx)
		return refreshedMsg{settings: settings, notices: box.drain(), err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case refreshedMsg:
		m.notices = append(m.notices, msg.notices...)
		if msg.err != nil {
			m.logger.Warn("failed to read settings", "error", msg.err)
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.apply(msg.settings)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) apply(settings *domain.Settings) {
	prev := m.panel
	m.panel = panel.Build(m.engine.Catalog(), settings)

	if m.panel.Difficulty != prev.Difficulty {
		m.taskCursor = 0
	}
	m.taskCursor = clamp(m.taskCursor, len(m.panel.Tasks))

	if m.panel.Loaded && (m.panel.TaskName != prev.TaskName || m.panel.Cursor != prev.Cursor) {
		m.focus = focusSteps
		m.stepCursor = m.panel.Cursor
	}
	m.stepCursor = clamp(m.stepCursor, len(m.panel.Rows))
	if !m.panel.Loaded {
		m.focus = focusTasks
	}
}

func clamp(i, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(i, 0), n-1)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if len(m.notices) > 0 {
		if key.Matches(msg, m.keys.Dismiss) {
			m.notices = m.notices[1:]
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusTasks && m.panel.Loaded {
			m.focus = focusSteps
		} else {
			m.focus = focusTasks
		}

	case key.Matches(msg, m.keys.Up):
		if m.focus == focusTasks {
			m.taskCursor = clamp(m.taskCursor-1, len(m.panel.Tasks))
		} else {
			m.stepCursor = clamp(m.stepCursor-1, len(m.panel.Rows))
		}

	case key.Matches(msg, m.keys.Down):
		if m.focus == focusTasks {
			m.taskCursor = clamp(m.taskCursor+1, len(m.panel.Tasks))
		} else {
			m.stepCursor = clamp(m.stepCursor+1, len(m.panel.Rows))
		}

	case key.Matches(msg, m.keys.NextDifficulty):
		return m, m.setDifficulty(m.panel.Difficulty.Next())

	case key.Matches(msg, m.keys.PrevDifficulty):
		return m, m.setDifficulty(m.panel.Difficulty.Prev())

	case key.Matches(msg, m.keys.Start):
		if m.focus != focusTasks || len(m.panel.Tasks) == 0 {
			return m, nil
		}
		name := m.panel.Tasks[m.taskCursor]
		handler := m.handler
		return m, m.run(func(ctx context.Context) {
			handler.StartTask(ctx, name)
		})

	case key.Matches(msg, m.keys.Restart):
		handler := m.handler
		return m, m.run(func(ctx context.Context) {
			handler.RestartTask(ctx)
		})

	case key.Matches(msg, m.keys.Submit):
		handler := m.handler
		return m, m.run(func(ctx context.Context) {
			handler.SubmitStep(ctx)
		})

	case key.Matches(msg, m.keys.Hint):
		var description string
		if m.stepCursor < len(m.panel.Rows) {
			description = m.panel.Rows[m.stepCursor].Description
		}
		m.handler.ShowHint(description, "")
		m.notices = append(m.notices, m.inbox.drain()...)

	case key.Matches(msg, m.keys.Diagnostics):
		handler := m.handler
		return m, m.run(func(ctx context.Context) {
			handler.CopyDiagnostics(ctx)
		})
	}
	return m, nil
}

func (m Model) setDifficulty(d domain.Difficulty) tea.Cmd {
	engine, box, logger := m.engine, m.inbox, m.logger
	return m.run(func(ctx context.Context) {
		if err := engine.SetDifficulty(ctx, d); err != nil {
			logger.WarnContext(ctx, "set difficulty failed", "difficulty", d, "error", err)
			box.Notify(domain.Notice{Title: commands.TitleError, Body: err.Error(), Level: domain.NoticeError})
		}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}
	if len(m.notices) > 0 {
		return m.renderNotice(m.notices[0])
	}
	return m.renderPanel()
}

func (m Model) renderTerminalTooSmall() string {
	msg := fmt.Sprintf("Terminal too small\nMinimum: %dx%d\nCurrent: %dx%d",
		MinTerminalWidth, MinTerminalHeight, m.width, m.height)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, errorStyle.Render(msg))
}

func (m Model) renderNotice(n domain.Notice) string {
	body := n.Body
	if m.render != nil {
		if out, err := m.render(body); err == nil {
			body = strings.TrimSpace(out)
		}
	}

	style := noticeStyle
	if n.Level == domain.NoticeError {
		style = errorNoticeStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(n.Title),
		body,
		"",
		subtleStyle.Render(m.keys.Dismiss.Help().Key+" to close"),
	)
	box := style.Width(min(m.width-4, 60)).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderPanel() string {
	var b strings.Builder
	width := min(m.width-2, 72)

	b.WriteString(titleStyle.Render("Q U E S T"))
	b.WriteString("\n")
	b.WriteString(m.renderDifficulty())
	b.WriteString("\n")

	tasksBox, stepsBox := boxStyle, boxStyle
	if m.focus == focusTasks {
		tasksBox = focusedBoxStyle
	} else {
		stepsBox = focusedBoxStyle
	}
	b.WriteString(tasksBox.Width(width).Render(m.renderTasks()))
	b.WriteString("\n")
	b.WriteString(stepsBox.Width(width).Render(m.renderSteps()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderDifficulty() string {
	parts := make([]string, 0, len(m.panel.Difficulties))
	var blurb string
	for _, opt := range m.panel.Difficulties {
		if opt.Selected {
			parts = append(parts, selectedStyle.Render("["+opt.Label+"]"))
			blurb = opt.Blurb
			continue
		}
		parts = append(parts, subtleStyle.Render(" "+opt.Label+" "))
	}
	return "Difficulty: " + strings.Join(parts, " ") + "\n" + subtleStyle.Render(blurb)
}

func (m Model) renderTasks() string {
	if len(m.panel.Tasks) == 0 {
		return subtleStyle.Render("No tasks for this difficulty")
	}
	lines := make([]string, 0, len(m.panel.Tasks))
	for i, name := range m.panel.Tasks {
		if m.focus == focusTasks && i == m.taskCursor {
			lines = append(lines, selectedStyle.Render("▶ "+name))
			continue
		}
		lines = append(lines, "  "+name)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSteps() string {
	if !m.panel.Loaded {
		return subtleStyle.Render(commands.MsgNoTask)
	}

	var b strings.Builder
	b.WriteString(selectedStyle.Render("Your Task: " + m.panel.TaskName))
	b.WriteString("\n")
	b.WriteString(m.panel.TaskDescription)
	b.WriteString("\n\n")

	for _, row := range m.panel.Rows {
		pointer := "  "
		if m.focus == focusSteps && row.Index == m.stepCursor {
			pointer = "> "
		}
		switch row.State {
		case panel.RowDone:
			b.WriteString(pointer + doneStyle.Render("[x] "+row.Name))
		case panel.RowCurrent:
			b.WriteString(pointer + selectedStyle.Render("[ ] "+row.Name))
			b.WriteString(subtleStyle.Render("  " + m.keys.Submit.Help().Key + ": submit"))
		default:
			b.WriteString(pointer + subtleStyle.Render("[ ] "+row.Name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Progress{Current: m.panel.Cursor, Total: m.panel.Total, Width: progressWidth}.View())
	if m.panel.Finished {
		b.WriteString("  " + doneStyle.Render("Task complete!"))
	}
	return b.String()
}
