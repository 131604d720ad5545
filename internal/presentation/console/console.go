// Package console renders the tutorial panel and notices as plain terminal text.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/quest/internal/presentation/panel"
	"github.com/aretw0/quest/internal/presentation/tui"
	"github.com/aretw0/quest/pkg/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87AF87"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AF5F5F"))
)

const progressWidth = 20

// RenderPanel writes the panel as a text report.
func RenderPanel(w io.Writer, p panel.Panel) {
	fmt.Fprintf(w, "%s %s %s\n",
		headingStyle.Render("Difficulty:"),
		p.Difficulty.Label(),
		subtleStyle.Render("("+p.Difficulty.Blurb()+")"))

	fmt.Fprintln(w, headingStyle.Render("Tasks:"))
	if len(p.Tasks) == 0 {
		fmt.Fprintln(w, subtleStyle.Render("  (none for this difficulty)"))
	}
	for _, name := range p.Tasks {
		fmt.Fprintf(w, "  - %s\n", name)
	}
	fmt.Fprintln(w)

	if !p.Loaded {
		fmt.Fprintln(w, subtleStyle.Render("No task loaded"))
		return
	}

	fmt.Fprintf(w, "%s %s\n", headingStyle.Render("Your Task:"), p.TaskName)
	if p.TaskDescription != "" {
		fmt.Fprintln(w, p.TaskDescription)
	}
	fmt.Fprintln(w)

	for _, row := range p.Rows {
		fmt.Fprintf(w, "  %s %d. %s", mark(row.State), row.Index+1, row.Name)
		if row.CanSubmit {
			fmt.Fprint(w, subtleStyle.Render("  <- current"))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	status := tui.Progress{Current: p.Cursor, Total: p.Total, Width: progressWidth}.View()
	if p.Finished {
		status += "  finished"
	}
	fmt.Fprintln(w, status)
}

func mark(s panel.RowState) string {
	switch s {
	case panel.RowDone:
		return "[x]"
	case panel.RowCurrent:
		return "[>]"
	default:
		return "[ ]"
	}
}

// Notifier prints notices to a writer. It implements ports.Notifier.
type Notifier struct {
	w      io.Writer
	render func(string) (string, error)
	errors int
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithMarkdown renders notice bodies through render (e.g. tui.NewRenderer).
func WithMarkdown(render func(string) (string, error)) NotifierOption {
	return func(n *Notifier) {
		n.render = render
	}
}

// NewNotifier creates a Notifier writing to w.
func NewNotifier(w io.Writer, opts ...NotifierOption) *Notifier {
	n := &Notifier{w: w}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify writes the notice title and body.
func (n *Notifier) Notify(notice domain.Notice) {
	style := infoStyle
	if notice.Level == domain.NoticeError {
		style = errorStyle
		n.errors++
	}

	body := notice.Body
	if n.render != nil {
		if out, err := n.render(body); err == nil {
			body = strings.Trim(out, "\n")
		}
	}

	fmt.Fprintln(n.w, style.Render(notice.Title))
	fmt.Fprintln(n.w, body)
}

// Errors reports how many error notices were written.
func (n *Notifier) Errors() int {
	return n.errors
}
