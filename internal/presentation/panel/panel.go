// Package panel builds the view model of the tutorial side panel.
//
// The panel holds no state of its own: every redraw rebuilds it from the
// catalog and the persisted settings.
package panel

import (
	"github.com/aretw0/quest/pkg/catalog"
	"github.com/aretw0/quest/pkg/domain"
)

// RowState marks a checklist entry.
type RowState int

const (
	RowPending RowState = iota
	RowDone
	RowCurrent
)

func (s RowState) String() string {
	switch s {
	case RowDone:
		return "done"
	case RowCurrent:
		return "current"
	default:
		return "pending"
	}
}

// DifficultyOption is one entry of the difficulty selector.
type DifficultyOption struct {
	Difficulty domain.Difficulty
	Label      string
	Blurb      string
	Selected   bool
}

// Row is one step of the active task checklist.
type Row struct {
	Index       int
	Name        string
	Description string
	State       RowState
	// CanSubmit is set on the row at the cursor only.
	CanSubmit bool
}

// Panel is everything the side panel shows.
type Panel struct {
	Difficulties []DifficultyOption
	Difficulty   domain.Difficulty
	Tasks        []string

	TaskName        string
	TaskDescription string
	Rows            []Row
	Cursor          int
	Total           int
	Loaded          bool
	Finished        bool
	CanRestart      bool
}

// Build renders the panel model for the given settings.
func Build(c *catalog.Catalog, settings *domain.Settings) Panel {
	if settings == nil {
		settings = domain.NewSettings()
	}
	selected := settings.Difficulty
	if !selected.Valid() {
		selected = domain.DefaultDifficulty
	}

	p := Panel{
		Difficulty: selected,
		Tasks:      c.List(selected),
	}
	for _, d := range domain.Difficulties {
		p.Difficulties = append(p.Difficulties, DifficultyOption{
			Difficulty: d,
			Label:      d.Label(),
			Blurb:      d.Blurb(),
			Selected:   d == selected,
		})
	}

	progress := settings.Progress
	if progress.IsEmpty() {
		return p
	}

	p.Loaded = true
	p.TaskName = progress.Name
	p.TaskDescription = progress.Description
	p.Cursor = progress.CurrentStep
	p.Total = len(progress.Steps)
	p.Finished = progress.IsFinished()
	p.CanRestart = true

	for i, step := range progress.Steps {
		row := Row{Index: i, Name: step.Name, Description: step.Description}
		switch {
		case i < progress.CurrentStep:
			row.State = RowDone
		case i == progress.CurrentStep:
			row.State = RowCurrent
			row.CanSubmit = true
		}
		p.Rows = append(p.Rows, row)
	}
	return p
}

// CurrentRow returns the row awaiting validation.
func (p Panel) CurrentRow() (Row, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Rows) {
		return Row{}, false
	}
	return p.Rows[p.Cursor], true
}
