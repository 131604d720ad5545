package ports

import (
	"context"

	"github.com/aretw0/quest/pkg/domain"
)

// SceneInspector exposes the read-only host state that checks evaluate.
// Implementations must not mutate the document while answering.
type SceneInspector interface {
	// HasObject reports whether an object with the exact name exists.
	HasObject(ctx context.Context, name string) (bool, error)

	// HasCollection reports whether a collection with the exact name exists.
	HasCollection(ctx context.Context, name string) (bool, error)

	// ObjectMaterials returns the material names assigned to an object's slots, in slot order.
	// It returns a nil slice and no error when the object does not exist.
	ObjectMaterials(ctx context.Context, object string) ([]string, error)

	// MaterialBaseColor returns the base color of a material.
	// The boolean is false when the material does not exist.
	MaterialBaseColor(ctx context.Context, material string) (domain.Color, bool, error)

	// ViewportShadings returns the shading mode of every 3D viewport in the workspace.
	ViewportShadings(ctx context.Context) ([]domain.Shading, error)
}

// Scene is the host document as seen by task setups.
type Scene interface {
	SceneInspector

	// ResetToBaseline replaces the document content with the default starting scene.
	ResetToBaseline(ctx context.Context) error

	// Clear removes every object, collection and material from the document.
	Clear(ctx context.Context) error
}
