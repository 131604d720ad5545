package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
)

// Built-in check names.
const (
	CheckObjectPresent         = "object_present"
	CheckObjectAbsent          = "object_absent"
	CheckCollectionPresent     = "collection_present"
	CheckMaterialAssigned      = "material_assigned"
	CheckMaterialColorDominant = "material_color_dominant"
	CheckViewportShading       = "viewport_shading"
)

// Built-in setup names.
const (
	SetupBaseline = domain.DefaultSetup
	SetupEmpty    = "empty"
)

// ObjectArgs names a single object.
type ObjectArgs struct {
	Object string `mapstructure:"object"`
}

func (a *ObjectArgs) Validate() error {
	if a.Object == "" {
		return errors.New("object is required")
	}
	return nil
}

// CollectionArgs names a single collection.
type CollectionArgs struct {
	Collection string `mapstructure:"collection"`
}

func (a *CollectionArgs) Validate() error {
	if a.Collection == "" {
		return errors.New("collection is required")
	}
	return nil
}

// MaterialArgs names a material slot on an object.
type MaterialArgs struct {
	Object   string `mapstructure:"object"`
	Material string `mapstructure:"material"`
}

func (a *MaterialArgs) Validate() error {
	if a.Object == "" || a.Material == "" {
		return errors.New("object and material are required")
	}
	return nil
}

// ColorDominantArgs requires a channel of the material base color to exceed the other two.
type ColorDominantArgs struct {
	Object   string `mapstructure:"object"`
	Material string `mapstructure:"material"`
	Channel  string `mapstructure:"channel"`
}

func (a *ColorDominantArgs) Validate() error {
	if a.Object == "" || a.Material == "" {
		return errors.New("object and material are required")
	}
	switch strings.ToLower(a.Channel) {
	case "r", "g", "b":
		return nil
	}
	return fmt.Errorf("channel must be r, g or b, got %q", a.Channel)
}

// ShadingArgs lists the accepted viewport shading modes.
type ShadingArgs struct {
	Modes []string `mapstructure:"modes"`
}

func (a *ShadingArgs) Validate() error {
	if len(a.Modes) == 0 {
		return errors.New("modes is required")
	}
	for _, m := range a.Modes {
		if _, err := domain.ParseShading(m); err != nil {
			return err
		}
	}
	return nil
}

func registerBuiltins(r *Registry) {
	RegisterTypedCheck(r, CheckObjectPresent, func(ctx context.Context, scene ports.SceneInspector, args ObjectArgs) (bool, error) {
		return scene.HasObject(ctx, args.Object)
	})

	RegisterTypedCheck(r, CheckObjectAbsent, func(ctx context.Context, scene ports.SceneInspector, args ObjectArgs) (bool, error) {
		present, err := scene.HasObject(ctx, args.Object)
		return !present, err
	})

	RegisterTypedCheck(r, CheckCollectionPresent, func(ctx context.Context, scene ports.SceneInspector, args CollectionArgs) (bool, error) {
		return scene.HasCollection(ctx, args.Collection)
	})

	RegisterTypedCheck(r, CheckMaterialAssigned, materialAssigned)

	RegisterTypedCheck(r, CheckMaterialColorDominant, func(ctx context.Context, scene ports.SceneInspector, args ColorDominantArgs) (bool, error) {
		assigned, err := materialAssigned(ctx, scene, MaterialArgs{Object: args.Object, Material: args.Material})
		if err != nil || !assigned {
			return false, err
		}
		color, ok, err := scene.MaterialBaseColor(ctx, args.Material)
		if err != nil || !ok {
			return false, err
		}
		return dominant(color, args.Channel), nil
	})

	RegisterTypedCheck(r, CheckViewportShading, func(ctx context.Context, scene ports.SceneInspector, args ShadingArgs) (bool, error) {
		modes, err := scene.ViewportShadings(ctx)
		if err != nil {
			return false, err
		}
		for _, mode := range modes {
			for _, want := range args.Modes {
				if strings.EqualFold(string(mode), want) {
					return true, nil
				}
			}
		}
		return false, nil
	})

	r.RegisterSetup(SetupBaseline, func(ctx context.Context, scene ports.Scene) error {
		return scene.ResetToBaseline(ctx)
	})
	r.RegisterSetup(SetupEmpty, func(ctx context.Context, scene ports.Scene) error {
		return scene.Clear(ctx)
	})
}

func materialAssigned(ctx context.Context, scene ports.SceneInspector, args MaterialArgs) (bool, error) {
	materials, err := scene.ObjectMaterials(ctx, args.Object)
	if err != nil {
		return false, err
	}
	return slices.Contains(materials, args.Material), nil
}

func dominant(c domain.Color, channel string) bool {
	switch strings.ToLower(channel) {
	case "r":
		return c.R > c.G && c.R > c.B
	case "g":
		return c.G > c.R && c.G > c.B
	case "b":
		return c.B > c.R && c.B > c.G
	}
	return false
}
