// file: services/attempt_service_test.go
package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-meet-scoring/models"
	"go-meet-scoring/services"
	"go-meet-scoring/store"
)

func newAttemptFixture(t *testing.T) (*services.AttemptService, *store.MemStore, models.Registration) {
	t.Helper()
	st := store.NewMemStore()
	reg, err := st.CreateRegistration(models.Registration{ContestID: "c1", LotNumber: 1})
	require.NoError(t, err)
	return services.NewAttemptService(st), st, reg
}

func startContest(t *testing.T, svc *services.AttemptService, contestID string) {
	t.Helper()
	_, err := svc.TransitionStatus(contestID, models.ContestRegistration)
	require.NoError(t, err)
	_, err = svc.TransitionStatus(contestID, models.ContestInProgress)
	require.NoError(t, err)
}

// Test declaring and changing an attempt weight
func TestRecordAttemptWeight(t *testing.T) {
	svc, _, reg := newAttemptFixture(t)

	a, err := svc.RecordAttemptWeight(reg.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptPending, a.Status)
	assert.Equal(t, 100.0, a.Weight)

	changed, err := svc.RecordAttemptWeight(reg.ID, models.LiftSquat, 1, 102.5)
	require.NoError(t, err)
	assert.Equal(t, a.ID, changed.ID)
	assert.Equal(t, 102.5, changed.Weight)
}

// Test that attempt weights are not checked against earlier attempts
func TestRecordAttemptWeight_NoMonotonicityRule(t *testing.T) {
	svc, _, reg := newAttemptFixture(t)

	_, err := svc.RecordAttemptWeight(reg.ID, models.LiftBench, 1, 100.0)
	require.NoError(t, err)

	// a lighter second attempt is legal; openers get misdeclared all the time
	a, err := svc.RecordAttemptWeight(reg.ID, models.LiftBench, 2, 90.0)
	require.NoError(t, err)
	assert.Equal(t, 90.0, a.Weight)
}

// Test validation on attempt number and weight
func TestRecordAttemptWeight_Validation(t *testing.T) {
	svc, _, reg := newAttemptFixture(t)

	_, err := svc.RecordAttemptWeight(reg.ID, models.LiftSquat, 0, 100.0)
	assert.Error(t, err)
	_, err = svc.RecordAttemptWeight(reg.ID, models.LiftSquat, 4, 100.0)
	assert.Error(t, err)
	_, err = svc.RecordAttemptWeight(reg.ID, models.LiftSquat, 1, 0)
	assert.Error(t, err)
	_, err = svc.RecordAttemptWeight("missing", models.LiftSquat, 1, 100.0)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

// Test judging verdicts, including the Pending rejection
func TestJudgeAttempt(t *testing.T) {
	svc, _, reg := newAttemptFixture(t)
	a, err := svc.RecordAttemptWeight(reg.ID, models.LiftDeadlift, 1, 180.0)
	require.NoError(t, err)

	judged, err := svc.JudgeAttempt(a.ID, models.AttemptGood)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptGood, judged.Status)

	// judging back to Pending is not a verdict
	_, err = svc.JudgeAttempt(a.ID, models.AttemptPending)
	assert.Error(t, err)

	_, err = svc.JudgeAttempt("missing", models.AttemptGood)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

// Test queue ordering across the declared weights of a flight
func TestNextInQueue_Ordering(t *testing.T) {
	svc, st, regA := newAttemptFixture(t)
	regB, err := st.CreateRegistration(models.Registration{ContestID: "c1", LotNumber: 2})
	require.NoError(t, err)
	regC, err := st.CreateRegistration(models.Registration{ContestID: "c1", LotNumber: 3})
	require.NoError(t, err)

	_, err = svc.RecordAttemptWeight(regA.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)
	_, err = svc.RecordAttemptWeight(regB.ID, models.LiftSquat, 1, 95.0)
	require.NoError(t, err)
	_, err = svc.RecordAttemptWeight(regC.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)

	startContest(t, svc, "c1")
	_, err = svc.SetCurrentLift("c1", models.LiftSquat, 1)
	require.NoError(t, err)

	queue, err := svc.NextInQueue("c1")
	require.NoError(t, err)
	require.Len(t, queue, 3)
	assert.Equal(t, regB.ID, queue[0].RegistrationID)
	assert.Equal(t, regA.ID, queue[1].RegistrationID)
	assert.Equal(t, regC.ID, queue[2].RegistrationID)
}

// Test that the queue is empty before any lift is selected
func TestNextInQueue_NoCurrentLift(t *testing.T) {
	svc, _, reg := newAttemptFixture(t)
	_, err := svc.RecordAttemptWeight(reg.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)

	// touch the state so the contest exists in Setup
	_, err = svc.ContestState("c1")
	require.NoError(t, err)

	queue, err := svc.NextInQueue("c1")
	require.NoError(t, err)
	assert.Empty(t, queue)
}

// Test the on-deck pointer lifecycle and its InProgress precondition
func TestSetCurrentAttempt(t *testing.T) {
	svc, _, reg := newAttemptFixture(t)
	a, err := svc.RecordAttemptWeight(reg.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)

	// contest still in Setup: refuse
	_, err = svc.ContestState("c1")
	require.NoError(t, err)
	err = svc.SetCurrentAttempt("c1", a.ID)
	assert.True(t, errors.Is(err, models.ErrContestNotInProgress))

	startContest(t, svc, "c1")
	require.NoError(t, svc.SetCurrentAttempt("c1", a.ID))

	current, err := svc.CurrentAttempt("c1")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, a.ID, current.ID)

	require.NoError(t, svc.ClearCurrentAttempt("c1"))
	current, err = svc.CurrentAttempt("c1")
	require.NoError(t, err)
	assert.Nil(t, current)
}

// Test the status machine: lazy initial state, legal path, rejections
func TestTransitionStatus(t *testing.T) {
	svc, _, _ := newAttemptFixture(t)

	state, err := svc.ContestState("c1")
	require.NoError(t, err)
	assert.Equal(t, models.ContestSetup, state.Status)
	assert.Equal(t, 1, state.CurrentRound)

	// skipping straight to InProgress is illegal from Setup
	_, err = svc.TransitionStatus("c1", models.ContestInProgress)
	var invalid *models.InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, models.ContestSetup, invalid.From)
	assert.Equal(t, models.ContestInProgress, invalid.To)

	// self-transition is a no-op, not an error
	state, err = svc.TransitionStatus("c1", models.ContestSetup)
	require.NoError(t, err)
	assert.Equal(t, models.ContestSetup, state.Status)

	startContest(t, svc, "c1")
	state, err = svc.TransitionStatus("c1", models.ContestPaused)
	require.NoError(t, err)
	assert.Equal(t, models.ContestPaused, state.Status)

	state, err = svc.TransitionStatus("c1", models.ContestInProgress)
	require.NoError(t, err)
	state, err = svc.TransitionStatus("c1", models.ContestComplete)
	require.NoError(t, err)
	assert.Equal(t, models.ContestComplete, state.Status)

	// Complete is terminal
	_, err = svc.TransitionStatus("c1", models.ContestSetup)
	assert.True(t, errors.As(err, &invalid))
}

// Test that advancing the flight clears the on-deck pointer
func TestSetCurrentLift_ClearsOnDeck(t *testing.T) {
	svc, _, reg := newAttemptFixture(t)
	a, err := svc.RecordAttemptWeight(reg.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)

	startContest(t, svc, "c1")
	_, err = svc.SetCurrentLift("c1", models.LiftSquat, 1)
	require.NoError(t, err)
	require.NoError(t, svc.SetCurrentAttempt("c1", a.ID))

	state, err := svc.SetCurrentLift("c1", models.LiftSquat, 2)
	require.NoError(t, err)
	assert.Nil(t, state.CurrentAttemptID)
	assert.Equal(t, 2, state.CurrentRound)

	_, err = svc.SetCurrentLift("c1", models.LiftSquat, 4)
	assert.Error(t, err, "round outside 1..3 must be rejected")
}

// Test resolving a registration's contest
func TestContestIDForRegistration(t *testing.T) {
	svc, _, reg := newAttemptFixture(t)

	contestID, err := svc.ContestIDForRegistration(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, "c1", contestID)

	_, err = svc.ContestIDForRegistration("missing")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
