// file: store/memstore_test.go
package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-meet-scoring/models"
	"go-meet-scoring/store"
)

func newRegistration(t *testing.T, st *store.MemStore, contestID string, lot int) models.Registration {
	t.Helper()
	reg, err := st.CreateRegistration(models.Registration{ContestID: contestID, LotNumber: lot})
	require.NoError(t, err)
	return reg
}

// Test that re-declaring a weight updates the slot instead of creating a duplicate
func TestUpsertAttemptWeight_NoDuplicateSlots(t *testing.T) {
	st := store.NewMemStore()
	reg := newRegistration(t, st, "c1", 1)

	first, err := st.UpsertAttemptWeight(reg.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptPending, first.Status)

	second, err := st.UpsertAttemptWeight(reg.ID, models.LiftSquat, 1, 105.0)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same slot must keep its identity")
	assert.Equal(t, 105.0, second.Weight)

	attempts, err := st.GetAttemptsByRegistration(reg.ID)
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}

// Test that a weight change never clears an existing judgement
func TestUpsertAttemptWeight_PreservesStatus(t *testing.T) {
	st := store.NewMemStore()
	reg := newRegistration(t, st, "c1", 1)

	a, err := st.UpsertAttemptWeight(reg.ID, models.LiftBench, 2, 80.0)
	require.NoError(t, err)
	require.NoError(t, st.SetAttemptResult(a.ID, models.AttemptGood))

	updated, err := st.UpsertAttemptWeight(reg.ID, models.LiftBench, 2, 82.5)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptGood, updated.Status)
	assert.Equal(t, 82.5, updated.Weight)
}

// Test queue ordering: weight ascending, lot number breaking ties
func TestNextAttemptsInQueue_Ordering(t *testing.T) {
	st := store.NewMemStore()
	regA := newRegistration(t, st, "c1", 1)
	regB := newRegistration(t, st, "c1", 2)
	regC := newRegistration(t, st, "c1", 3)

	_, err := st.UpsertAttemptWeight(regA.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)
	_, err = st.UpsertAttemptWeight(regB.ID, models.LiftSquat, 1, 95.0)
	require.NoError(t, err)
	_, err = st.UpsertAttemptWeight(regC.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)

	queue, err := st.NextAttemptsInQueue("c1", models.LiftSquat, 1)
	require.NoError(t, err)
	require.Len(t, queue, 3)
	assert.Equal(t, regB.ID, queue[0].RegistrationID, "lightest bar first")
	assert.Equal(t, regA.ID, queue[1].RegistrationID, "tie broken by lot number")
	assert.Equal(t, regC.ID, queue[2].RegistrationID)
}

// Test that judged attempts leave the queue
func TestNextAttemptsInQueue_ExcludesJudged(t *testing.T) {
	st := store.NewMemStore()
	reg := newRegistration(t, st, "c1", 1)

	a, err := st.UpsertAttemptWeight(reg.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)
	require.NoError(t, st.SetAttemptResult(a.ID, models.AttemptBad))

	queue, err := st.NextAttemptsInQueue("c1", models.LiftSquat, 1)
	require.NoError(t, err)
	assert.Empty(t, queue)
}

// Test that the queue only covers the requested lift and round
func TestNextAttemptsInQueue_FiltersLiftAndRound(t *testing.T) {
	st := store.NewMemStore()
	reg := newRegistration(t, st, "c1", 1)

	_, err := st.UpsertAttemptWeight(reg.ID, models.LiftSquat, 1, 100.0)
	require.NoError(t, err)
	_, err = st.UpsertAttemptWeight(reg.ID, models.LiftSquat, 2, 105.0)
	require.NoError(t, err)
	_, err = st.UpsertAttemptWeight(reg.ID, models.LiftBench, 1, 60.0)
	require.NoError(t, err)

	queue, err := st.NextAttemptsInQueue("c1", models.LiftSquat, 2)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, 105.0, queue[0].Weight)
}

// Test that results are replaced as a set, not merged
func TestReplaceContestResults(t *testing.T) {
	st := store.NewMemStore()
	regA := newRegistration(t, st, "c1", 1)
	regB := newRegistration(t, st, "c1", 2)

	_, err := st.UpsertResult(models.CompetitionResult{RegistrationID: regA.ID, ContestID: "c1", TotalWeight: 100})
	require.NoError(t, err)

	err = st.ReplaceContestResults("c1", []models.CompetitionResult{
		{RegistrationID: regB.ID, ContestID: "c1", TotalWeight: 200},
	})
	require.NoError(t, err)

	_, err = st.GetResultByRegistration(regA.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound), "stale result must be gone after replace")

	res, err := st.GetResultByRegistration(regB.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, res.TotalWeight)
}

// Test ranked reads: rank ascending, disqualified lifters excluded
func TestGetRankedResults(t *testing.T) {
	st := store.NewMemStore()
	one, two := 1, 2

	err := st.ReplaceContestResults("c1", []models.CompetitionResult{
		{RegistrationID: "r2", ContestID: "c1", PlaceOpen: &two},
		{RegistrationID: "r1", ContestID: "c1", PlaceOpen: &one},
		{RegistrationID: "r3", ContestID: "c1", IsDisqualified: true},
	})
	require.NoError(t, err)

	ranked, err := st.GetRankedResults("c1", models.RankingOpen)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "r1", ranked[0].RegistrationID)
	assert.Equal(t, "r2", ranked[1].RegistrationID)
}

// Test bar weight defaults for an unconfigured contest
func TestGetBarWeights_Defaults(t *testing.T) {
	st := store.NewMemStore()

	bw, err := st.GetBarWeights("never-configured")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMensBar, bw.Mens)
	assert.Equal(t, models.DefaultWomensBar, bw.Womens)

	require.NoError(t, st.SetBarWeights("c1", models.BarWeights{Mens: 25, Womens: 15}))
	bw, err = st.GetBarWeights("c1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, bw.Mens)
}

// Test plate sets come back heaviest first
func TestGetPlateSets_Ordering(t *testing.T) {
	st := store.NewMemStore()
	for _, w := range []float64{2.5, 25, 10} {
		_, err := st.CreatePlateSet(models.PlateSet{ContestID: "c1", PlateWeight: w, Quantity: 2})
		require.NoError(t, err)
	}

	sets, err := st.GetPlateSets("c1")
	require.NoError(t, err)
	require.Len(t, sets, 3)
	assert.Equal(t, 25.0, sets[0].PlateWeight)
	assert.Equal(t, 10.0, sets[1].PlateWeight)
	assert.Equal(t, 2.5, sets[2].PlateWeight)
}

// Test missing-record lookups wrap ErrNotFound
func TestNotFoundErrors(t *testing.T) {
	st := store.NewMemStore()

	_, err := st.GetAttempt("nope")
	assert.True(t, errors.Is(err, models.ErrNotFound))

	_, err = st.GetRegistration("nope")
	assert.True(t, errors.Is(err, models.ErrNotFound))

	_, err = st.GetContestState("nope")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
