package scene

import "github.com/aretw0/quest/pkg/domain"

// Object kinds.
const (
	KindMesh   = "MESH"
	KindCamera = "CAMERA"
	KindLight  = "LIGHT"
)

// BaselineCollection is the collection created by the baseline setup.
const BaselineCollection = "Collection"

// DefaultBaseColor is the base color of newly created materials.
var DefaultBaseColor = domain.Color{R: 0.8, G: 0.8, B: 0.8, A: 1}

// Object is an entity of the document.
type Object struct {
	Name       string     `yaml:"name"`
	Kind       string     `yaml:"kind"`
	Collection string     `yaml:"collection,omitempty"`
	Location   [3]float64 `yaml:"location,flow"`
	Materials  []string   `yaml:"materials,omitempty"`
}

// Material is a named surface definition.
type Material struct {
	Name      string       `yaml:"name"`
	BaseColor domain.Color `yaml:"base_color"`
}

// Viewport is a 3D view area of the workspace.
type Viewport struct {
	Shading domain.Shading `yaml:"shading"`
}

// Document is the serializable content of a Scene.
type Document struct {
	Collections []string   `yaml:"collections"`
	Objects     []Object   `yaml:"objects"`
	Materials   []Material `yaml:"materials"`
	Viewports   []Viewport `yaml:"viewports"`
}

// Baseline returns the default starting document: one collection holding a
// camera, a point light and a cube, viewed by a single solid-shaded viewport.
func Baseline() Document {
	return Document{
		Collections: []string{BaselineCollection},
		Objects: []Object{
			{Name: "Camera", Kind: KindCamera, Collection: BaselineCollection, Location: [3]float64{7.359, -6.927, 4.958}},
			{Name: "Light", Kind: KindLight, Collection: BaselineCollection, Location: [3]float64{4.076, 1.005, 5.904}},
			{Name: "Cube", Kind: KindMesh, Collection: BaselineCollection},
		},
		Viewports: []Viewport{{Shading: domain.ShadingSolid}},
	}
}

// Empty returns a document with no data blocks. The workspace keeps its viewport.
func Empty() Document {
	return Document{
		Viewports: []Viewport{{Shading: domain.ShadingSolid}},
	}
}

func (d Document) clone() Document {
	out := Document{
		Collections: append([]string(nil), d.Collections...),
		Objects:     make([]Object, len(d.Objects)),
		Materials:   append([]Material(nil), d.Materials...),
		Viewports:   append([]Viewport(nil), d.Viewports...),
	}
	for i, o := range d.Objects {
		o.Materials = append([]string(nil), o.Materials...)
		out.Objects[i] = o
	}
	return out
}
