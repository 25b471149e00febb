// Package apperror defines the typed errors shared across luzia.
package apperror

import "fmt"

// ValidationError is returned at the input boundary when a user-supplied value
// cannot be accepted.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// RowError describes a history log row that was skipped during load.
// It is logged, never returned to the user.
type RowError struct {
	Line   int
	Reason string
	Err    error
}

func (e *RowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d skipped: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("row %d skipped: %s", e.Line, e.Reason)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failure to write or copy the history log. It is
// always reported to the user.
type PersistenceError struct {
	Path string
	Op   string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
