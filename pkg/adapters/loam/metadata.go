package loam

// TaskMetadata is the frontmatter of a markdown task document.
// The document body is the task description.
type TaskMetadata struct {
	Name       string         `json:"name" mapstructure:"name"`
	Difficulty string         `json:"difficulty" mapstructure:"difficulty"`
	Setup      string         `json:"setup,omitempty" mapstructure:"setup"`
	Steps      []StepMetadata `json:"steps" mapstructure:"steps"`
}

// StepMetadata is one entry of the "steps" frontmatter list.
type StepMetadata struct {
	Name        string          `json:"name" mapstructure:"name"`
	Description string          `json:"description" mapstructure:"description"`
	Checks      []CheckMetadata `json:"checks" mapstructure:"checks"`
}

// CheckMetadata references a registered check. Args are passed through untouched.
type CheckMetadata struct {
	Name string         `json:"name" mapstructure:"name"`
	Args map[string]any `json:"args,omitempty" mapstructure:"args"`
}
