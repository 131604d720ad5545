/*
Package domain contains the core domain models of the Quest engine.

It defines the tutorial catalog entities (Tasks made of ordered Steps, each
validated by a list of Checks), the persisted Progress record that tracks the
single active task, and the small enumerations shared by every layer. This
package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Task: A named tutorial unit with a Difficulty tier, ordered Steps and a Setup action.
  - Step: One checkable unit of progress, satisfied when all of its Checks pass.
  - Check: A reference (name + args) to a registered, read-only predicate over host state.
  - Progress: The persisted snapshot of the active task (descriptors and cursor).
  - Settings: The persisted record for one host document (Progress + Difficulty filter).
*/
package domain
