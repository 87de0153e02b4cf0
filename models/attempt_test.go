// file: models/attempt_test.go
package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go-meet-scoring/models"
)

// Test lift type parsing for known and unknown values
func TestParseLiftType(t *testing.T) {
	for _, lift := range models.AllLifts {
		parsed, err := models.ParseLiftType(lift.String())
		assert.NoError(t, err)
		assert.Equal(t, lift, parsed)
	}

	_, err := models.ParseLiftType("Curl")
	assert.Error(t, err, "unknown lift types must be rejected, not defaulted")
}

// Test attempt status parsing for known and unknown values
func TestParseAttemptStatus(t *testing.T) {
	known := []models.AttemptStatus{
		models.AttemptPending,
		models.AttemptGood,
		models.AttemptBad,
		models.AttemptSkipped,
	}
	for _, status := range known {
		parsed, err := models.ParseAttemptStatus(status.String())
		assert.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := models.ParseAttemptStatus("Maybe")
	assert.Error(t, err)
}

// Test that only terminal statuses count as judgements
func TestAttemptStatus_IsJudgement(t *testing.T) {
	assert.False(t, models.AttemptPending.IsJudgement())
	assert.True(t, models.AttemptGood.IsJudgement())
	assert.True(t, models.AttemptBad.IsJudgement())
	assert.True(t, models.AttemptSkipped.IsJudgement())
}
