package domain

import "errors"

// ErrTaskNotFound is returned when a task name is absent from the catalog.
var ErrTaskNotFound = errors.New("task not found")

// ErrStepNotFound is returned when the step at the cursor cannot be resolved
// against the catalog. It signals that the persisted record and the catalog diverged.
var ErrStepNotFound = errors.New("step not found")

// ErrSettingsNotFound is returned when a document has no persisted settings.
var ErrSettingsNotFound = errors.New("settings not found")

// ErrUnknownCheck is returned when a step references a check that is not registered.
var ErrUnknownCheck = errors.New("unknown check")

// ErrUnknownSetup is returned when a task references a setup that is not registered.
var ErrUnknownSetup = errors.New("unknown setup")

// ErrInvalidDifficulty is returned when parsing an unknown difficulty tier.
var ErrInvalidDifficulty = errors.New("invalid difficulty")
