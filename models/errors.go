// Package models defines data structures used across the application.
// File: models/errors.go
package models

import (
	"errors"
	"fmt"
)

// Common domain errors surfaced by the scoring core.
var (
	// ErrNotFound indicates a referenced attempt, registration,
	// competitor, plate set or contest state does not exist.
	ErrNotFound = errors.New("not found")

	// ErrContestNotInProgress indicates an operation that requires a
	// running contest was attempted while the contest was not InProgress.
	ErrContestNotInProgress = errors.New("contest is not in progress")
)

// InvalidTransitionError is returned when a contest status change
// violates the state machine. It carries the attempted pair.
type InvalidTransitionError struct {
	From ContestStatus
	To   ContestStatus
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid contest status transition from %s to %s", e.From, e.To)
}

// ValidationError is returned for malformed input, such as a
// non-positive weight or an out-of-range attempt number.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
