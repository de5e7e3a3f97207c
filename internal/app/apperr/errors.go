// Package apperr defines the error kinds surfaced by the query and mutation
// services: not-found, validation failure, persistence failure and broken
// references. Referential-integrity violations raised by the store arrive
// wrapped in a PersistenceError; they are not validated ahead of time.
package apperr

import (
	"errors"
	"fmt"
)

// GenericMessage is what create/update failures show the user in place of
// store internals.
const GenericMessage = "Something went wrong, please try again."

// ErrNotFound signals that a requested record does not exist. It maps to a
// 404 at the HTTP boundary, distinct from the generic failure message.
var ErrNotFound = errors.New("not found")

// ValidationError reports a required field that is missing or malformed.
// It blocks the operation before any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError wraps a store-level failure during create, update or
// delete. The enclosing transaction has already been rolled back when one
// of these is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// BrokenReference reports a show pointing at an artist or venue that no
// longer exists. The schema's foreign keys should make this unreachable;
// reads report it instead of panicking if the store has been corrupted.
type BrokenReference struct {
	Kind string
	ID   uint
}

func (e *BrokenReference) Error() string {
	return fmt.Sprintf("show references missing %s %d", e.Kind, e.ID)
}
