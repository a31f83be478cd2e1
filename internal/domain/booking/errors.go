// Package booking defines the Venue, Artist and Show entities, the input
// structs every mutation accepts, and the error taxonomy the query and
// mutation layers classify failures into. Handlers translate these errors
// into HTTP responses; nothing below this package swallows an error.
package booking

import (
	"fmt"
	"strings"
)

// ValidationError reports the required fields that were missing or
// malformed on a create/edit submission. It is raised before any write is
// attempted, so the store is untouched whenever it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

// NotFoundError is returned by lookups, edits and deletes addressed to an
// identifier with no matching row.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ReferentialIntegrityError signals a show submission referencing a venue
// or artist that does not exist. The show is never persisted.
type ReferentialIntegrityError struct {
	Field string
	ID    uint
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s %d does not reference an existing record", e.Field, e.ID)
}

// PersistenceError wraps a store failure during a mutation, after the
// transaction has been rolled back. Name carries the attempted entity name
// when one is known so the caller can surface it to the user.
type PersistenceError struct {
	Entity string
	Name   string
	Err    error
}

func (e *PersistenceError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("could not persist %s %q: %v", e.Entity, e.Name, e.Err)
	}
	return fmt.Sprintf("could not persist %s: %v", e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
