package domain

// StepDescriptor is the persisted copy of a Step. Checks are not persisted;
// they are recovered by name from the catalog.
type StepDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Progress is the persisted record of the single active task.
// The zero value is the empty record (no task loaded).
type Progress struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Steps       []StepDescriptor `json:"steps"`
	CurrentStep int              `json:"current_step"`
}

// NewProgress builds a fresh record for a task, with the cursor at the first step.
func NewProgress(task Task) Progress {
	steps := make([]StepDescriptor, 0, len(task.Steps))
	for _, s := range task.Steps {
		steps = append(steps, StepDescriptor{Name: s.Name, Description: s.Description})
	}
	return Progress{
		Name:        task.Name,
		Description: task.Description,
		Steps:       steps,
		CurrentStep: 0,
	}
}

// IsEmpty reports whether no task is loaded.
func (p Progress) IsEmpty() bool {
	return p.Name == ""
}

// IsFinished reports whether every step has been validated.
func (p Progress) IsFinished() bool {
	return p.CurrentStep == len(p.Steps)
}

// Current returns the descriptor at the cursor, or false if the cursor is out of range.
func (p Progress) Current() (StepDescriptor, bool) {
	if p.CurrentStep < 0 || p.CurrentStep >= len(p.Steps) {
		return StepDescriptor{}, false
	}
	return p.Steps[p.CurrentStep], true
}

// Clone returns a copy that does not share the step slice.
func (p Progress) Clone() Progress {
	out := p
	if p.Steps != nil {
		out.Steps = make([]StepDescriptor, len(p.Steps))
		copy(out.Steps, p.Steps)
	}
	return out
}

// Settings is the persisted record kept per host document: the active task
// progress and the user-selected difficulty filter.
type Settings struct {
	Progress   Progress   `json:"progress"`
	Difficulty Difficulty `json:"difficulty"`
}

// NewSettings returns the record used when nothing was persisted yet.
func NewSettings() *Settings {
	return &Settings{Difficulty: DefaultDifficulty}
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	return &Settings{
		Progress:   s.Progress.Clone(),
		Difficulty: s.Difficulty,
	}
}
