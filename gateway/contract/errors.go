package contract

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrIncompleteOrder    = errors.New("order is incomplete")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// FieldError reports a malformed or missing caller-supplied field, detected
// before any network call.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}

// IncompleteOrderError lists every required order field that is still empty,
// so the orchestrator can ask for all of them in one turn.
type IncompleteOrderError struct {
	Missing []string
}

func (e *IncompleteOrderError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

func (e *IncompleteOrderError) Is(target error) bool {
	return target == ErrIncompleteOrder
}

// BackendError wraps a transport, timeout, or protocol failure from one named
// backend. The gateway never retries or downgrades these.
type BackendError struct {
	Backend string
	Op      string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackendUnavailable
}
