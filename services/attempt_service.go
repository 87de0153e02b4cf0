// Package services: services/attempt_service.go
// AttemptService owns the per-registration attempt ledger, the lifting
// queue and the contest state machine.
package services

import (
	"errors"
	"fmt"

	"go-meet-scoring/logger"
	"go-meet-scoring/models"
	"go-meet-scoring/store"
)

// AttemptServiceInterface is the attempt-progression surface consumed
// by the controllers.
type AttemptServiceInterface interface {
	RecordAttemptWeight(registrationID string, lift models.LiftType, attemptNumber int, weight float64) (models.Attempt, error)
	JudgeAttempt(attemptID string, status models.AttemptStatus) (models.Attempt, error)
	AttemptsByRegistration(registrationID string) ([]models.Attempt, error)
	ContestAttempts(contestID string) ([]models.Attempt, error)
	DeleteAttempt(attemptID string) error

	NextInQueue(contestID string) ([]models.Attempt, error)
	CurrentAttempt(contestID string) (*models.Attempt, error)
	SetCurrentAttempt(contestID, attemptID string) error
	ClearCurrentAttempt(contestID string) error

	ContestState(contestID string) (models.ContestState, error)
	TransitionStatus(contestID string, to models.ContestStatus) (models.ContestState, error)
	SetCurrentLift(contestID string, lift models.LiftType, round int) (models.ContestState, error)

	ContestIDForRegistration(registrationID string) (string, error)
}

// AttemptService is the storage-backed implementation.
type AttemptService struct {
	store store.Store
}

// NewAttemptService creates a new AttemptService instance.
func NewAttemptService(st store.Store) *AttemptService {
	return &AttemptService{store: st}
}

// RecordAttemptWeight declares or changes the weight for one attempt
// slot. The slot is created as Pending if absent, otherwise the weight
// is overwritten in place regardless of its status. Weights are
// deliberately not validated against prior attempts; any positive
// weight is accepted.
func (s *AttemptService) RecordAttemptWeight(registrationID string, lift models.LiftType, attemptNumber int, weight float64) (models.Attempt, error) {
	if attemptNumber < 1 || attemptNumber > 3 {
		return models.Attempt{}, models.NewValidationError("attemptNumber", "must be between 1 and 3")
	}
	if weight <= 0 {
		return models.Attempt{}, models.NewValidationError("weight", "must be positive")
	}

	if _, err := s.store.GetRegistration(registrationID); err != nil {
		return models.Attempt{}, err
	}

	attempt, err := s.store.UpsertAttemptWeight(registrationID, lift, attemptNumber, weight)
	if err != nil {
		return models.Attempt{}, err
	}
	logger.Info.Printf("RecordAttemptWeight: registration=%s %s attempt %d set to %.1fkg",
		registrationID, lift, attemptNumber, weight)
	return attempt, nil
}

// JudgeAttempt records the judges' verdict on an attempt. Only
// terminal statuses are accepted; an attempt cannot be judged back
// to Pending.
func (s *AttemptService) JudgeAttempt(attemptID string, status models.AttemptStatus) (models.Attempt, error) {
	if !status.IsJudgement() {
		return models.Attempt{}, models.NewValidationError("status", fmt.Sprintf("%q is not a judgement", status))
	}

	attempt, err := s.store.GetAttempt(attemptID)
	if err != nil {
		return models.Attempt{}, err
	}
	if err := s.store.SetAttemptResult(attemptID, status); err != nil {
		return models.Attempt{}, err
	}
	attempt.Status = status
	logger.Info.Printf("JudgeAttempt: attempt=%s (%s attempt %d, %.1fkg) judged %s",
		attemptID, attempt.LiftType, attempt.AttemptNumber, attempt.Weight, status)
	return attempt, nil
}

// AttemptsByRegistration lists a registration's attempt ledger.
func (s *AttemptService) AttemptsByRegistration(registrationID string) ([]models.Attempt, error) {
	return s.store.GetAttemptsByRegistration(registrationID)
}

// ContestAttempts lists every attempt in a contest, for display use.
func (s *AttemptService) ContestAttempts(contestID string) ([]models.Attempt, error) {
	return s.store.GetContestAttempts(contestID)
}

// DeleteAttempt removes an attempt record. Explicit administrative
// action only; judging never deletes.
func (s *AttemptService) DeleteAttempt(attemptID string) error {
	return s.store.DeleteAttempt(attemptID)
}

// NextInQueue returns the Pending attempts for the contest's current
// lift and round, ordered by weight ascending with lot number breaking
// ties. An empty queue is returned when no lift is currently running.
func (s *AttemptService) NextInQueue(contestID string) ([]models.Attempt, error) {
	state, err := s.store.GetContestState(contestID)
	if err != nil {
		return nil, err
	}
	if state.CurrentLift == nil {
		logger.Debug.Printf("NextInQueue: contest=%s has no current lift, queue empty", contestID)
		return []models.Attempt{}, nil
	}
	return s.store.NextAttemptsInQueue(contestID, *state.CurrentLift, state.CurrentRound)
}

// CurrentAttempt returns the contest's on-deck attempt, or nil when
// none is set.
func (s *AttemptService) CurrentAttempt(contestID string) (*models.Attempt, error) {
	state, err := s.store.GetContestState(contestID)
	if err != nil {
		return nil, err
	}
	if state.CurrentAttemptID == nil {
		return nil, nil
	}
	attempt, err := s.store.GetAttempt(*state.CurrentAttemptID)
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// SetCurrentAttempt marks an attempt as the contest's on-deck lift.
// The contest must be InProgress; this is the one business rule
// enforced on attempt progression.
func (s *AttemptService) SetCurrentAttempt(contestID, attemptID string) error {
	state, err := s.store.GetContestState(contestID)
	if err != nil {
		return err
	}
	if state.Status != models.ContestInProgress {
		return fmt.Errorf("contest %s has status %s: %w", contestID, state.Status, models.ErrContestNotInProgress)
	}
	if _, err := s.store.GetAttempt(attemptID); err != nil {
		return err
	}

	state.CurrentAttemptID = &attemptID
	if err := s.store.UpsertContestState(state); err != nil {
		return err
	}
	logger.Info.Printf("SetCurrentAttempt: contest=%s now on attempt=%s", contestID, attemptID)
	return nil
}

// ClearCurrentAttempt unsets the contest's on-deck pointer.
func (s *AttemptService) ClearCurrentAttempt(contestID string) error {
	state, err := s.store.GetContestState(contestID)
	if err != nil {
		return err
	}
	state.CurrentAttemptID = nil
	return s.store.UpsertContestState(state)
}

// ContestState returns the contest's state row, creating the initial
// Setup row on first touch so a fresh contest always has a state.
func (s *AttemptService) ContestState(contestID string) (models.ContestState, error) {
	return s.stateOrInitial(contestID)
}

// TransitionStatus moves the contest through its status machine.
// Self-transitions are idempotent no-ops; anything else outside the
// legal set fails with the attempted pair in the error.
func (s *AttemptService) TransitionStatus(contestID string, to models.ContestStatus) (models.ContestState, error) {
	state, err := s.stateOrInitial(contestID)
	if err != nil {
		return models.ContestState{}, err
	}

	if !state.Status.CanTransitionTo(to) {
		return models.ContestState{}, &models.InvalidTransitionError{From: state.Status, To: to}
	}
	if state.Status == to {
		// idempotent no-op, nothing to persist
		return state, nil
	}

	logger.Info.Printf("TransitionStatus: contest=%s %s -> %s", contestID, state.Status, to)
	state.Status = to
	if err := s.store.UpsertContestState(state); err != nil {
		return models.ContestState{}, err
	}
	return state, nil
}

// SetCurrentLift points the queue at a lift and round. Advancing the
// flight invalidates the on-deck pointer, so it is cleared here.
func (s *AttemptService) SetCurrentLift(contestID string, lift models.LiftType, round int) (models.ContestState, error) {
	if round < 1 || round > 3 {
		return models.ContestState{}, models.NewValidationError("round", "must be between 1 and 3")
	}

	state, err := s.stateOrInitial(contestID)
	if err != nil {
		return models.ContestState{}, err
	}

	state.CurrentLift = &lift
	state.CurrentRound = round
	state.CurrentAttemptID = nil
	if err := s.store.UpsertContestState(state); err != nil {
		return models.ContestState{}, err
	}
	logger.Info.Printf("SetCurrentLift: contest=%s now running %s round %d", contestID, lift, round)
	return state, nil
}

// ContestIDForRegistration resolves which contest a registration
// belongs to, so judging decisions can trigger the right re-rank.
func (s *AttemptService) ContestIDForRegistration(registrationID string) (string, error) {
	reg, err := s.store.GetRegistration(registrationID)
	if err != nil {
		return "", err
	}
	return reg.ContestID, nil
}

// stateOrInitial fetches a contest's state, lazily creating the
// initial Setup row for contests that have never been touched.
func (s *AttemptService) stateOrInitial(contestID string) (models.ContestState, error) {
	state, err := s.store.GetContestState(contestID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.ContestState{}, err
	}

	initial := models.ContestState{
		ContestID:    contestID,
		Status:       models.ContestSetup,
		CurrentRound: 1,
	}
	if err := s.store.UpsertContestState(initial); err != nil {
		return models.ContestState{}, err
	}
	logger.Debug.Printf("stateOrInitial: created initial state for contest=%s", contestID)
	return initial, nil
}
