package domain

import (
	"fmt"
	"strings"
)

// Difficulty is the closed classification used to filter task listings.
type Difficulty int

const (
	Beginner Difficulty = iota
	Medium
	Guru
)

// Difficulties lists every tier in presentation order.
var Difficulties = []Difficulty{Beginner, Medium, Guru}

// DefaultDifficulty is the tier selected when nothing was persisted yet.
const DefaultDifficulty = Beginner

// ParseDifficulty converts a tier token (case-insensitive) into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BEGINNER":
		return Beginner, nil
	case "MEDIUM":
		return Medium, nil
	case "GURU":
		return Guru, nil
	}
	return Beginner, fmt.Errorf("%w: %q (expected BEGINNER, MEDIUM or GURU)", ErrInvalidDifficulty, s)
}

// String returns the canonical upper-case token.
func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "BEGINNER"
	case Medium:
		return "MEDIUM"
	case Guru:
		return "GURU"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Label is the short human name of the tier.
func (d Difficulty) Label() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Medium:
		return "Medium"
	case Guru:
		return "Guru"
	}
	return d.String()
}

// Blurb describes what to expect from the tier.
func (d Difficulty) Blurb() string {
	switch d {
	case Beginner:
		return "Easy journey"
	case Medium:
		return "You may sweat a little"
	case Guru:
		return "All hope abandon you who enter here"
	}
	return ""
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Medium, Guru:
		return true
	}
	return false
}

// Next returns the following tier, wrapping around after Guru.
func (d Difficulty) Next() Difficulty {
	switch d {
	case Beginner:
		return Medium
	case Medium:
		return Guru
	case Guru:
		return Beginner
	}
	return DefaultDifficulty
}

// Prev returns the preceding tier, wrapping around before Beginner.
func (d Difficulty) Prev() Difficulty {
	switch d {
	case Beginner:
		return Guru
	case Medium:
		return Beginner
	case Guru:
		return Medium
	}
	return DefaultDifficulty
}

// MarshalText implements encoding.TextMarshaler (used by JSON and YAML).
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
