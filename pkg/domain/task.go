package domain

// DefaultSetup is the scene-preparation action used when a task does not name one.
const DefaultSetup = "baseline"

// Check references a registered predicate over live host state.
// Args are decoded by the predicate itself, which keeps catalog data serializable.
type Check struct {
	Name string         `json:"name" yaml:"name"`
	Args map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
}

// Step is one checkable unit of progress within a task.
type Step struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Checks      []Check `json:"checks" yaml:"checks"`
}

// Task is an immutable catalog definition of a tutorial.
type Task struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Steps       []Step     `json:"steps" yaml:"steps"`

	// Setup names the scene-preparation action run when the task is (re)started.
	// Empty means DefaultSetup.
	Setup string `json:"setup,omitempty" yaml:"setup,omitempty"`
}

// SetupName returns the effective setup action name.
func (t Task) SetupName() string {
	if t.Setup == "" {
		return DefaultSetup
	}
	return t.Setup
}

// Step looks up a step definition by name.
func (t Task) Step(name string) (Step, bool) {
	for _, s := range t.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}
