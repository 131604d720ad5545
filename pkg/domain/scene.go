package domain

import (
	"fmt"
	"strings"
)

// Shading is the display mode of a 3D viewport.
type Shading string

const (
	ShadingWireframe Shading = "WIREFRAME"
	ShadingSolid     Shading = "SOLID"
	ShadingMaterial  Shading = "MATERIAL"
	ShadingRendered  Shading = "RENDERED"
)

// ParseShading converts a mode token (case-insensitive) into a Shading.
func ParseShading(s string) (Shading, error) {
	switch mode := Shading(strings.ToUpper(strings.TrimSpace(s))); mode {
	case ShadingWireframe, ShadingSolid, ShadingMaterial, ShadingRendered:
		return mode, nil
	}
	return "", fmt.Errorf("invalid shading mode %q", s)
}

// Color is a linear RGBA color as stored in material parameters.
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}
