// Package models defines data structures used across the application.
// File: models/contest.go
package models

import "fmt"

// ----------------------- contest status -----------------------

// ContestStatus is the phase a contest is in.
type ContestStatus string

const (
	ContestSetup        ContestStatus = "Setup"
	ContestRegistration ContestStatus = "Registration"
	ContestInProgress   ContestStatus = "InProgress"
	ContestPaused       ContestStatus = "Paused"
	ContestComplete     ContestStatus = "Complete"
)

// String returns the persisted form of the status.
func (s ContestStatus) String() string { return string(s) }

// ParseContestStatus maps a persisted string back to a ContestStatus.
func ParseContestStatus(s string) (ContestStatus, error) {
	switch s {
	case "Setup":
		return ContestSetup, nil
	case "Registration":
		return ContestRegistration, nil
	case "InProgress":
		return ContestInProgress, nil
	case "Paused":
		return ContestPaused, nil
	case "Complete":
		return ContestComplete, nil
	default:
		return "", fmt.Errorf("unknown contest status %q", s)
	}
}

// legal forward transitions; a status may always transition to itself.
var contestTransitions = map[ContestStatus][]ContestStatus{
	ContestSetup:        {ContestRegistration},
	ContestRegistration: {ContestInProgress},
	ContestInProgress:   {ContestPaused, ContestComplete},
	ContestPaused:       {ContestInProgress},
	ContestComplete:     {},
}

// CanTransitionTo reports whether moving from s to next is a legal
// contest state change. Self-transitions are idempotent no-ops.
func (s ContestStatus) CanTransitionTo(next ContestStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range contestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ----------------------- contest state -----------------------

// ContestState is the singleton per-contest record governing which
// lift and round the attempt queue is drawing from. CurrentAttemptID
// is the "on-deck" pointer, kept per contest so multiple contests can
// run independently.
type ContestState struct {
	ContestID        string        `json:"contestId"`
	Status           ContestStatus `json:"status"`
	CurrentLift      *LiftType     `json:"currentLift,omitempty"`
	CurrentRound     int           `json:"currentRound"` // 1..3
	CurrentAttemptID *string       `json:"currentAttemptId,omitempty"`
}

// ----------------------- bar weights -----------------------

// BarWeights holds a contest's configured bar weights in kilograms.
type BarWeights struct {
	Mens   float64 `json:"mensBarWeight"`
	Womens float64 `json:"womensBarWeight"`
}

// Default bar weights when a contest has none configured.
const (
	DefaultMensBar   = 20.0
	DefaultWomensBar = 15.0
)
