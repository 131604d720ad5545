package domain

// Outcome is the result of validating the current step.
type Outcome int

const (
	// OutcomeAlreadyFinished means the cursor already reached the end; nothing changed.
	OutcomeAlreadyFinished Outcome = iota
	// OutcomeAdvanced means every check passed and the cursor moved by one.
	OutcomeAdvanced
	// OutcomeNotSatisfied means at least one check failed; the cursor did not move.
	OutcomeNotSatisfied
	// OutcomeStepNotFound means the record could not be resolved against the catalog.
	OutcomeStepNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyFinished:
		return "already_finished"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeNotSatisfied:
		return "not_satisfied"
	case OutcomeStepNotFound:
		return "step_not_found"
	}
	return "unknown"
}
