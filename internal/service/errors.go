// Package service implements the gallery's domain logic: it is the
// only component that mutates entities, composes one store per entity
// kind, validates preconditions and persists in an invariant-preserving
// order. Read paths go through a reference-resolution pass that joins
// the collections into a read model.
package service

import "errors"

// Sentinel errors shared across operations. Callers distinguish the
// failure class with errors.Is; the wrapped message names the
// offending ID or value.
var (
	// ErrNotFound is returned when a referenced ID (artist, artwork,
	// visitor, exhibition, ticket, rental) does not exist in its store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when an entity's current status
	// forbids the operation, such as selling an artwork that is not in
	// the gallery.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidArgument is returned when caller-supplied values break
	// a structural rule: a rental ending before it starts, or a visit
	// date outside the exhibition period.
	ErrInvalidArgument = errors.New("invalid argument")
)
