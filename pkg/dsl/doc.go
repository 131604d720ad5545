/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically defining Quest tasks.

It allows developers to define tutorials using a type-safe, fluent builder pattern
instead of relying on external YAML files. The result is a plain list of
domain.Task values that can be handed to catalog.New.

Example usage:

	b := dsl.New()

	b.Task("Red Monkey").
		Describe("Teaches basics of Blender.").
		Difficulty(domain.Beginner).
		Step("Remove Default Cube", "Select default cube and press Delete.").
		Check(registry.CheckObjectAbsent, dsl.Args{"object": "Cube"}).
		Step("Spawn Monkey", "Click Add -> Mesh -> Monkey.").
		Check(registry.CheckObjectPresent, dsl.Args{"object": "Suzanne"})

	tasks, err := b.Build()
*/
package dsl
