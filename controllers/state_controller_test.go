// controllers/state_controller_test.go
package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-meet-scoring/models"
)

func TestGetState_LazyInitial(t *testing.T) {
	f := newAPIFixture()

	w := f.do(t, "GET", "/api/contests/fresh/state", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var state models.ContestState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, models.ContestSetup, state.Status)
	assert.Equal(t, 1, state.CurrentRound)
	assert.Nil(t, state.CurrentLift)
}

func TestTransitionStatus_IllegalJump(t *testing.T) {
	f := newAPIFixture()

	w := f.do(t, "PUT", "/api/contests/c1/status", `{"status":"Complete"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Setup")
	assert.Contains(t, w.Body.String(), "Complete")
}

func TestTransitionStatus_UnknownStatus(t *testing.T) {
	f := newAPIFixture()

	w := f.do(t, "PUT", "/api/contests/c1/status", `{"status":"Warmup"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransitionStatus_SelfTransitionIsOK(t *testing.T) {
	f := newAPIFixture()

	// first touch creates Setup; repeating Setup is a no-op, not a conflict
	require.Equal(t, http.StatusOK, f.do(t, "GET", "/api/contests/c1/state", "").Code)
	w := f.do(t, "PUT", "/api/contests/c1/status", `{"status":"Setup"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetCurrentLift(t *testing.T) {
	f := newAPIFixture()

	w := f.do(t, "PUT", "/api/contests/c1/lift", `{"liftType":"Bench","round":2}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var state models.ContestState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	require.NotNil(t, state.CurrentLift)
	assert.Equal(t, models.LiftBench, *state.CurrentLift)
	assert.Equal(t, 2, state.CurrentRound)

	w = f.do(t, "PUT", "/api/contests/c1/lift", `{"liftType":"Bench","round":4}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "round outside 1..3")
}
