package requisition

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("requisition not found")
	ErrUnauthorized      = errors.New("not authorized to perform this action")
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrStaleStatus is returned by Repository.UpdateDecision when the row no
	// longer carries the status the decision was planned against.
	ErrStaleStatus = errors.New("requisition status changed concurrently")
)

// ValidationError names the first payload field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// TransitionError carries the status the requisition actually holds so that
// callers can report "already decided".
type TransitionError struct {
	Action  Action
	Current Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s requisition. Current status: %s", e.Action, e.Current)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// StorageError wraps persistence failures; its message is never shown to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "requisition storage: " + e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
