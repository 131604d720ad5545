package catalog

import (
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/dsl"
	"github.com/aretw0/quest/pkg/registry"
)

// Built-in task names.
const (
	TaskRedMonkey      = "Red Monkey"
	TaskDestroyTraffiq = "Destroy traffiq vehicle"
)

// DefaultTasks returns the built-in tutorial definitions.
func DefaultTasks() []domain.Task {
	b := dsl.New()

	b.Task(TaskRedMonkey).
		Describe("Teaches basics of Blender.").
		Difficulty(domain.Beginner).
		Step("Remove Default Cube", "Select default cube and press Delete.").
		Check(registry.CheckObjectAbsent, dsl.Args{"object": "Cube"}).
		Step("Spawn Monkey", "Click Add -> Mesh -> Monkey.").
		Check(registry.CheckObjectPresent, dsl.Args{"object": "Suzanne"}).
		Step("Add material MonkeyMaterial",
			"In Properties Window select Material Properties tab, click New to add new "+
				"material and rename it to 'MonkeyMaterial'.").
		Check(registry.CheckMaterialAssigned, dsl.Args{"object": "Suzanne", "material": "MonkeyMaterial"}).
		Step("Change material color to red",
			"In Material Properties tab open Surface panel and change Base Color to red.").
		Check(registry.CheckMaterialColorDominant, dsl.Args{"object": "Suzanne", "material": "MonkeyMaterial", "channel": "r"}).
		Step("View result",
			"You noticed that color of the monkey object didn't change. It's because we are in "+
				"Solid view mode. Change Viewport shading to Material Preview or Rendered.").
		Check(registry.CheckViewportShading, dsl.Args{"modes": []string{string(domain.ShadingMaterial), string(domain.ShadingRendered)}})

	// Further steps are authored as YAML task files.
	b.Task(TaskDestroyTraffiq).
		Describe("How to add dirt, scratches and bumps to the traffiq assets.").
		Difficulty(domain.Medium).
		Step("Remove Default Cube", "Select default cube and press Delete.").
		Check(registry.CheckObjectAbsent, dsl.Args{"object": "Cube"})

	tasks, err := b.Build()
	if err != nil {
		panic(err)
	}
	return tasks
}

// Default builds the catalog of built-in tasks plus any extra tasks, validated against reg.
func Default(reg *registry.Registry, extra ...domain.Task) (*Catalog, error) {
	return New(reg, append(DefaultTasks(), extra...)...)
}
