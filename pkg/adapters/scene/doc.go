// Package scene provides an in-memory simulation of a host 3D document.
//
// It implements ports.Scene so that tasks can be loaded and validated without
// the real content-creation tool, and exposes the editing operations a user
// performs while following a tutorial (adding objects, assigning materials,
// switching viewport shading). A Scene may be backed by a YAML file so that
// separate CLI invocations share the same document.
package scene
