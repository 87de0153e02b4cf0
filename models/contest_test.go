// file: models/contest_test.go
package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go-meet-scoring/models"
)

// Test the full contest status transition table
func TestContestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    models.ContestStatus
		to      models.ContestStatus
		allowed bool
	}{
		{models.ContestSetup, models.ContestRegistration, true},
		{models.ContestRegistration, models.ContestInProgress, true},
		{models.ContestInProgress, models.ContestPaused, true},
		{models.ContestInProgress, models.ContestComplete, true},
		{models.ContestPaused, models.ContestInProgress, true},

		{models.ContestSetup, models.ContestInProgress, false},
		{models.ContestSetup, models.ContestComplete, false},
		{models.ContestRegistration, models.ContestSetup, false},
		{models.ContestPaused, models.ContestComplete, false},
		{models.ContestComplete, models.ContestSetup, false},
		{models.ContestComplete, models.ContestInProgress, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

// Test that every status may transition to itself
func TestContestStatus_SelfTransition(t *testing.T) {
	statuses := []models.ContestStatus{
		models.ContestSetup,
		models.ContestRegistration,
		models.ContestInProgress,
		models.ContestPaused,
		models.ContestComplete,
	}
	for _, s := range statuses {
		assert.True(t, s.CanTransitionTo(s), "self-transition for %s", s)
	}
}

// Test contest status parsing
func TestParseContestStatus(t *testing.T) {
	parsed, err := models.ParseContestStatus("InProgress")
	assert.NoError(t, err)
	assert.Equal(t, models.ContestInProgress, parsed)

	_, err = models.ParseContestStatus("Warmup")
	assert.Error(t, err)
}
