package scene

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/quest/pkg/domain"
	"gopkg.in/yaml.v3"
)

var (
	// ErrObjectNotFound is returned when editing an object that does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrMaterialNotFound is returned when editing a material that does not exist.
	ErrMaterialNotFound = errors.New("material not found")
	// ErrViewportNotFound is returned when a viewport index is out of range.
	ErrViewportNotFound = errors.New("viewport not found")
	// ErrUnknownPrimitive is returned when adding an object of an unknown kind.
	ErrUnknownPrimitive = errors.New("unknown primitive")
)

// primitives maps the "Add" menu entries to the object they create.
var primitives = map[string]struct {
	name string
	kind string
}{
	"cube":     {"Cube", KindMesh},
	"plane":    {"Plane", KindMesh},
	"sphere":   {"Sphere", KindMesh},
	"cylinder": {"Cylinder", KindMesh},
	"monkey":   {"Suzanne", KindMesh},
	"camera":   {"Camera", KindCamera},
	"light":    {"Light", KindLight},
}

// Primitives returns the accepted primitive names, sorted.
func Primitives() []string {
	out := make([]string, 0, len(primitives))
	for k := range primitives {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Scene is a simulated host document. Safe for concurrent use.
type Scene struct {
	mu   sync.RWMutex
	doc  Document
	path string
}

// New creates a scene holding the baseline document.
func New() *Scene {
	return &Scene{doc: Baseline()}
}

// Open loads a scene from a YAML file. A missing file yields the baseline
// document; Flush creates it.
func Open(path string) (*Scene, error) {
	s := &Scene{doc: Baseline(), path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	s.doc = doc
	return s, nil
}

// Path returns the backing file, empty for purely in-memory scenes.
func (s *Scene) Path() string {
	return s.path
}

// Flush writes the document to its backing file. It is a no-op for in-memory scenes.
func (s *Scene) Flush() error {
	if s.path == "" {
		return nil
	}

	s.mu.RLock()
	data, err := yaml.Marshal(s.doc)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to ensure scene directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace scene file: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current document.
func (s *Scene) Snapshot() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.clone()
}

// --- ports.SceneInspector ---

func (s *Scene) HasObject(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objectIndex(name) >= 0, nil
}

func (s *Scene) HasCollection(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.doc.Collections, name), nil
}

func (s *Scene) ObjectMaterials(ctx context.Context, object string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.objectIndex(object)
	if i < 0 {
		return nil, nil
	}
	return append([]string(nil), s.doc.Objects[i].Materials...), nil
}

func (s *Scene) MaterialBaseColor(ctx context.Context, material string) (domain.Color, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.materialIndex(material)
	if i < 0 {
		return domain.Color{}, false, nil
	}
	return s.doc.Materials[i].BaseColor, true, nil
}

func (s *Scene) ViewportShadings(ctx context.Context) ([]domain.Shading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Shading, 0, len(s.doc.Viewports))
	for _, v := range s.doc.Viewports {
		out = append(out, v.Shading)
	}
	return out, nil
}

// --- ports.Scene ---

func (s *Scene) ResetToBaseline(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = Baseline()
	return nil
}

func (s *Scene) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = Empty()
	return nil
}

// --- editing ---

// AddObject adds a primitive to the document and returns the name it received.
// Names are made unique with a numeric suffix (".001", ".002", ...).
// The object joins the baseline collection when it exists.
func (s *Scene) AddObject(primitive string) (string, error) {
	p, ok := primitives[strings.ToLower(primitive)]
	if !ok {
		return "", fmt.Errorf("%w: %s (expected one of %s)", ErrUnknownPrimitive, primitive, strings.Join(Primitives(), ", "))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := uniqueName(p.name, func(n string) bool { return s.objectIndex(n) >= 0 })
	obj := Object{Name: name, Kind: p.kind}
	if slices.Contains(s.doc.Collections, BaselineCollection) {
		obj.Collection = BaselineCollection
	}
	s.doc.Objects = append(s.doc.Objects, obj)
	return name, nil
}

// RemoveObject deletes an object. Materials stay in the document.
func (s *Scene) RemoveObject(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.objectIndex(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, name)
	}
	s.doc.Objects = slices.Delete(s.doc.Objects, i, i+1)
	return nil
}

// NewMaterial creates a material and appends it to the object's material slots.
// It returns the material name, suffixed if the name was taken.
func (s *Scene) NewMaterial(object, name string) (string, error) {
	if name == "" {
		name = "Material"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.objectIndex(object)
	if i < 0 {
		return "", fmt.Errorf("%w: %s", ErrObjectNotFound, object)
	}

	name = uniqueName(name, func(n string) bool { return s.materialIndex(n) >= 0 })
	s.doc.Materials = append(s.doc.Materials, Material{Name: name, BaseColor: DefaultBaseColor})
	s.doc.Objects[i].Materials = append(s.doc.Objects[i].Materials, name)
	return name, nil
}

// AssignMaterial appends an existing material to the object's slots.
func (s *Scene) AssignMaterial(object, material string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.objectIndex(object)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, object)
	}
	if s.materialIndex(material) < 0 {
		return fmt.Errorf("%w: %s", ErrMaterialNotFound, material)
	}
	s.doc.Objects[i].Materials = append(s.doc.Objects[i].Materials, material)
	return nil
}

// SetBaseColor changes the base color of a material.
func (s *Scene) SetBaseColor(material string, c domain.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.materialIndex(material)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrMaterialNotFound, material)
	}
	s.doc.Materials[i].BaseColor = c
	return nil
}

// SetShading changes the shading mode of the viewport at index.
func (s *Scene) SetShading(index int, mode domain.Shading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.doc.Viewports) {
		return fmt.Errorf("%w: %d", ErrViewportNotFound, index)
	}
	s.doc.Viewports[index].Shading = mode
	return nil
}

func (s *Scene) objectIndex(name string) int {
	return slices.IndexFunc(s.doc.Objects, func(o Object) bool { return o.Name == name })
}

func (s *Scene) materialIndex(name string) int {
	return slices.IndexFunc(s.doc.Materials, func(m Material) bool { return m.Name == name })
}

func uniqueName(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", base, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
