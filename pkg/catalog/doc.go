// Package catalog holds the static, ordered collection of tutorial tasks.
//
// A Catalog is validated once at construction against a registry of checks
// and setups, and is read-only afterwards. Tasks can be defined in Go (see
// package dsl and Default) or read from YAML files with LoadFile and LoadDir.
package catalog
