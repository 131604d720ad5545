/*
Package quest is an interactive tutorial engine for 3D content-creation tools.

A tutorial ("task") is an ordered list of steps. Each step names a few checks,
read-only predicates over the live host document, and the user advances by
performing the described action in the host and submitting the step. Progress
is persisted per host document, so a tutorial survives restarts of the host.

# Concept

The engine never drives the host. It prepares the document when a task starts,
then only inspects it: the user does the work, the engine verifies it. The host
is reached through narrow ports (see package ports), which keeps the core
independent of any particular application. The module ships a simulated scene
(package scene) used by the CLI and the tests.

# Key Features

  - Static catalog: tasks are defined in Go (package dsl) or YAML files and validated once.
  - Data-driven checks: steps reference registered checks by name with plain arguments.
  - Durable progress: settings records can live in memory, JSON files, Redis or SQLite.
  - Observability: lifecycle hooks feed Prometheus counters and structured logs.

# Usage

	eng, err := quest.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := eng.LoadTask(ctx, "Red Monkey"); err != nil {
		log.Fatal(err)
	}

	// ... the user edits the document ...

	outcome, err := eng.CheckCurrentStep(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(outcome)
*/
package quest
