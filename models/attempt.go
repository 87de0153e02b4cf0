// Package models defines data structures used across the application.
// File: models/attempt.go
package models

import "fmt"

// ----------------------- lift type -----------------------

// LiftType identifies one of the three competition lifts.
type LiftType string

const (
	LiftSquat    LiftType = "Squat"
	LiftBench    LiftType = "Bench"
	LiftDeadlift LiftType = "Deadlift"
)

// AllLifts lists the lifts in contest order.
var AllLifts = []LiftType{LiftSquat, LiftBench, LiftDeadlift}

// String returns the persisted form of the lift type.
func (lt LiftType) String() string { return string(lt) }

// ParseLiftType maps a persisted string back to a LiftType.
// Unknown strings are a decode error, never silently defaulted.
func ParseLiftType(s string) (LiftType, error) {
	switch s {
	case "Squat":
		return LiftSquat, nil
	case "Bench":
		return LiftBench, nil
	case "Deadlift":
		return LiftDeadlift, nil
	default:
		return "", fmt.Errorf("unknown lift type %q", s)
	}
}

// ----------------------- attempt status -----------------------

// AttemptStatus is the lifecycle state of a single attempt.
type AttemptStatus string

const (
	AttemptPending AttemptStatus = "Pending"
	AttemptGood    AttemptStatus = "Good"
	AttemptBad     AttemptStatus = "Bad"
	AttemptSkipped AttemptStatus = "Skipped"
)

// String returns the persisted form of the status.
func (s AttemptStatus) String() string { return string(s) }

// ParseAttemptStatus maps a persisted string back to an AttemptStatus.
func ParseAttemptStatus(s string) (AttemptStatus, error) {
	switch s {
	case "Pending":
		return AttemptPending, nil
	case "Good":
		return AttemptGood, nil
	case "Bad":
		return AttemptBad, nil
	case "Skipped":
		return AttemptSkipped, nil
	default:
		return "", fmt.Errorf("unknown attempt status %q", s)
	}
}

// IsJudgement reports whether the status is a judge's verdict
// (as opposed to the initial Pending state).
func (s AttemptStatus) IsJudgement() bool {
	return s == AttemptGood || s == AttemptBad || s == AttemptSkipped
}

// ----------------------- attempt model -----------------------

// Attempt is one of up to nine records per registration
// (three lifts x three tries), uniquely keyed by
// (RegistrationID, LiftType, AttemptNumber).
type Attempt struct {
	ID             string        `json:"id"`
	RegistrationID string        `json:"registrationId"`
	LiftType       LiftType      `json:"liftType"`
	AttemptNumber  int           `json:"attemptNumber"` // 1..3
	Weight         float64       `json:"weight"`
	Status         AttemptStatus `json:"status"`
}
