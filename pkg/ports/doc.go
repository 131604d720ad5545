/*
Package ports defines the driven ports (interfaces) for the Quest engine.

These interfaces decouple the core logic from the host application, allowing
the engine to run against the real content-creation tool, the simulated scene
shipped in pkg/adapters/scene, or test doubles.

# Key Interfaces

  - SceneInspector: Read-only queries over the live host document, used by checks.
  - Scene: SceneInspector plus the preparation actions used when a task starts.
  - SettingsStore: Persists the Settings record of each host document.
  - Notifier: Displays modal notices to the user.
  - Clipboard: Receives the diagnostics dump.
  - Diagnostics: Produces the anonymized diagnostics dump.
*/
package ports
