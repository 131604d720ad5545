// Package graph renders tasks as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/quest/pkg/domain"
)

// Node IDs of the chart terminals.
const (
	StartID = "start"
	DoneID  = "done"
)

// Overlay marks progress on the chart.
type Overlay struct {
	// Cursor is the index of the step awaiting validation.
	// len(steps) marks the task as finished.
	Cursor int
}

// GenerateMermaid produces a Mermaid flowchart of a task: a start circle,
// one node per step in order, and a done circle. Checks are drawn as
// subroutines hanging off their step.
// With an overlay, validated steps are styled as visited and the step at the
// cursor (or the done node) as current.
func GenerateMermaid(task domain.Task, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	fmt.Fprintf(&sb, "    %s((\"%s\"))\n", StartID, escapeLabel(task.Name))

	prev := StartID
	for i, step := range task.Steps {
		id := stepID(i)
		fmt.Fprintf(&sb, "    %s[\"%s\"]\n", id, escapeLabel(step.Name))
		fmt.Fprintf(&sb, "    %s --> %s\n", prev, id)

		for j, check := range step.Checks {
			checkID := fmt.Sprintf("%s_c%d", id, j)
			fmt.Fprintf(&sb, "    %s[[\"%s\"]]\n", checkID, escapeLabel(check.Name))
			fmt.Fprintf(&sb, "    %s -.- %s\n", id, checkID)
		}
		prev = id
	}
	fmt.Fprintf(&sb, "    %s((\"done\"))\n", DoneID)
	fmt.Fprintf(&sb, "    %s --> %s\n", prev, DoneID)

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		cursor := min(max(overlay.Cursor, 0), len(task.Steps))
		for i := range cursor {
			fmt.Fprintf(&sb, "    class %s visited;\n", stepID(i))
		}
		current := DoneID
		if cursor < len(task.Steps) {
			current = stepID(cursor)
		}
		fmt.Fprintf(&sb, "    class %s current;\n", current)
	}

	return sb.String()
}

func stepID(i int) string {
	return fmt.Sprintf("step%d", i+1)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
