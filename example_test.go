package quest_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/quest"
	"github.com/aretw0/quest/pkg/adapters/scene"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/dsl"
	"github.com/aretw0/quest/pkg/registry"
)

// ExampleNew demonstrates a full tutorial run against the simulated scene.
func ExampleNew() {
	sc := scene.New()
	eng, err := quest.New(quest.WithScene(sc))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := eng.LoadTask(ctx, "Destroy traffiq vehicle"); err != nil {
		log.Fatal(err)
	}

	outcome, _ := eng.CheckCurrentStep(ctx)
	fmt.Println(outcome)

	// The user deletes the default cube in the host.
	_ = sc.RemoveObject("Cube")

	outcome, _ = eng.CheckCurrentStep(ctx)
	fmt.Println(outcome)

	outcome, _ = eng.CheckCurrentStep(ctx)
	fmt.Println(outcome)

	// Output:
	// not_satisfied
	// advanced
	// already_finished
}

// ExampleWithTasks demonstrates adding a task defined with the DSL.
func ExampleWithTasks() {
	b := dsl.New()
	b.Task("Sphere Time").
		Describe("Add a sphere next to the cube.").
		Difficulty(domain.Guru).
		Step("Add sphere", "Click Add -> Mesh -> UV Sphere.").
		Check(registry.CheckObjectPresent, dsl.Args{"object": "Sphere"})

	tasks, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	eng, err := quest.New(quest.WithTasks(tasks...))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	_ = eng.SetDifficulty(ctx, domain.Guru)
	names, _ := eng.AvailableTasks(ctx)
	fmt.Println(names)

	// Output:
	// [Sphere Time]
}
