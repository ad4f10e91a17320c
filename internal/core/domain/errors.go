// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services and adapters
var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock is returned by the conditional decrement when the
	// listed quantity no longer covers the requested amount.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError rejects malformed input before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// AuthorizationError rejects a transition the acting department/role is not
// allowed to perform. Checked before any write.
type AuthorizationError struct {
	Actor  Department
	Action string
}

func (e AuthorizationError) Error() string {
	return fmt.Sprintf("department %q is not allowed to %s", e.Actor, e.Action)
}

// PartialWriteError reports a multi-step operation that failed after one or
// more writes already committed. Callers get the completed step names so the
// inconsistent state can be logged and repaired.
type PartialWriteError struct {
	Op        string
	Completed []string
	Err       error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("%s left inconsistent state (completed: %s): %v",
		e.Op, strings.Join(e.Completed, ", "), e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }
