// Package store: store/memstore.go
// MemStore keeps every record in per-entity maps behind one mutex.
// Reads copy out so callers never alias store-owned memory, and
// ReplaceContestResults swaps a contest's whole result set in one
// critical section so concurrent readers see the old or the new
// ranking, never a partial one.
package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"go-meet-scoring/models"
)

// attemptKey is the natural key of an attempt slot: at most one row
// may exist per (registration, lift, attempt number).
type attemptKey struct {
	registrationID string
	lift           models.LiftType
	number         int
}

// MemStore is the in-memory Store implementation.
type MemStore struct {
	mu sync.Mutex

	competitors   map[string]models.Competitor
	registrations map[string]models.Registration
	attempts      map[string]models.Attempt
	attemptIndex  map[attemptKey]string // natural key -> attempt id
	contestStates map[string]models.ContestState
	results       map[string]models.CompetitionResult // keyed by registration id
	plateSets     map[string]models.PlateSet
	barWeights    map[string]models.BarWeights
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		competitors:   make(map[string]models.Competitor),
		registrations: make(map[string]models.Registration),
		attempts:      make(map[string]models.Attempt),
		attemptIndex:  make(map[attemptKey]string),
		contestStates: make(map[string]models.ContestState),
		results:       make(map[string]models.CompetitionResult),
		plateSets:     make(map[string]models.PlateSet),
		barWeights:    make(map[string]models.BarWeights),
	}
}

// ------------------- competitors -------------------

// CreateCompetitor stores a competitor, assigning an ID if absent.
func (s *MemStore) CreateCompetitor(c models.Competitor) (models.Competitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.competitors[c.ID] = c
	return c, nil
}

// GetCompetitor returns the competitor with the given ID.
func (s *MemStore) GetCompetitor(id string) (models.Competitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.competitors[id]
	if !ok {
		return models.Competitor{}, fmt.Errorf("competitor %s: %w", id, models.ErrNotFound)
	}
	return c, nil
}

// ------------------- registrations -------------------

// CreateRegistration stores a registration, assigning an ID if absent.
func (s *MemStore) CreateRegistration(r models.Registration) (models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	s.registrations[r.ID] = r
	return r, nil
}

// GetRegistration returns the registration with the given ID.
func (s *MemStore) GetRegistration(id string) (models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.registrations[id]
	if !ok {
		return models.Registration{}, fmt.Errorf("registration %s: %w", id, models.ErrNotFound)
	}
	return r, nil
}

// GetRegistrationsByContest returns all registrations for a contest,
// ordered by lot number.
func (s *MemStore) GetRegistrationsByContest(contestID string) ([]models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var regs []models.Registration
	for _, r := range s.registrations {
		if r.ContestID == contestID {
			regs = append(regs, r)
		}
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].LotNumber < regs[j].LotNumber })
	return regs, nil
}

// ------------------- attempts -------------------

// UpsertAttemptWeight creates the slot as Pending if absent, otherwise
// overwrites the weight in place. The slot's status is untouched on
// update; a weight change never resurrects or re-judges an attempt.
func (s *MemStore) UpsertAttemptWeight(registrationID string, lift models.LiftType, attemptNumber int, weight float64) (models.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := attemptKey{registrationID: registrationID, lift: lift, number: attemptNumber}
	if id, ok := s.attemptIndex[key]; ok {
		a := s.attempts[id]
		a.Weight = weight
		s.attempts[id] = a
		return a, nil
	}

	a := models.Attempt{
		ID:             uuid.NewString(),
		RegistrationID: registrationID,
		LiftType:       lift,
		AttemptNumber:  attemptNumber,
		Weight:         weight,
		Status:         models.AttemptPending,
	}
	s.attempts[a.ID] = a
	s.attemptIndex[key] = a.ID
	return a, nil
}

// GetAttempt returns the attempt with the given ID.
func (s *MemStore) GetAttempt(id string) (models.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[id]
	if !ok {
		return models.Attempt{}, fmt.Errorf("attempt %s: %w", id, models.ErrNotFound)
	}
	return a, nil
}

// GetAttemptsByRegistration returns a registration's attempts ordered
// by lift then attempt number.
func (s *MemStore) GetAttemptsByRegistration(registrationID string) ([]models.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var attempts []models.Attempt
	for _, a := range s.attempts {
		if a.RegistrationID == registrationID {
			attempts = append(attempts, a)
		}
	}
	sortAttempts(attempts)
	return attempts, nil
}

// GetContestAttempts returns every attempt in a contest, ordered by
// lift then attempt number.
func (s *MemStore) GetContestAttempts(contestID string) ([]models.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var attempts []models.Attempt
	for _, a := range s.attempts {
		r, ok := s.registrations[a.RegistrationID]
		if ok && r.ContestID == contestID {
			attempts = append(attempts, a)
		}
	}
	sortAttempts(attempts)
	return attempts, nil
}

// liftOrder gives lifts their contest ordering for sorting.
var liftOrder = map[models.LiftType]int{
	models.LiftSquat:    0,
	models.LiftBench:    1,
	models.LiftDeadlift: 2,
}

func sortAttempts(attempts []models.Attempt) {
	sort.Slice(attempts, func(i, j int) bool {
		if attempts[i].LiftType != attempts[j].LiftType {
			return liftOrder[attempts[i].LiftType] < liftOrder[attempts[j].LiftType]
		}
		return attempts[i].AttemptNumber < attempts[j].AttemptNumber
	})
}

// SetAttemptResult records a judging decision on an attempt.
func (s *MemStore) SetAttemptResult(id string, status models.AttemptStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[id]
	if !ok {
		return fmt.Errorf("attempt %s: %w", id, models.ErrNotFound)
	}
	a.Status = status
	s.attempts[id] = a
	return nil
}

// NextAttemptsInQueue returns the Pending attempts for the given lift
// and round across a contest, ordered by weight ascending with ties
// broken by the registration's lot number ascending.
func (s *MemStore) NextAttemptsInQueue(contestID string, lift models.LiftType, round int) ([]models.Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lots := make(map[string]int) // registration id -> lot number
	var queue []models.Attempt
	for _, a := range s.attempts {
		if a.Status != models.AttemptPending || a.LiftType != lift || a.AttemptNumber != round {
			continue
		}
		r, ok := s.registrations[a.RegistrationID]
		if !ok || r.ContestID != contestID {
			continue
		}
		lots[a.RegistrationID] = r.LotNumber
		queue = append(queue, a)
	}
	sort.Slice(queue, func(i, j int) bool {
		if queue[i].Weight != queue[j].Weight {
			return queue[i].Weight < queue[j].Weight
		}
		return lots[queue[i].RegistrationID] < lots[queue[j].RegistrationID]
	})
	return queue, nil
}

// DeleteAttempt removes an attempt. Explicit administrative action only.
func (s *MemStore) DeleteAttempt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attempts[id]
	if !ok {
		return fmt.Errorf("attempt %s: %w", id, models.ErrNotFound)
	}
	delete(s.attempts, id)
	delete(s.attemptIndex, attemptKey{registrationID: a.RegistrationID, lift: a.LiftType, number: a.AttemptNumber})
	return nil
}

// ------------------- contest state -------------------

// GetContestState returns the singleton state row for a contest.
func (s *MemStore) GetContestState(contestID string) (models.ContestState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.contestStates[contestID]
	if !ok {
		return models.ContestState{}, fmt.Errorf("contest state %s: %w", contestID, models.ErrNotFound)
	}
	return st, nil
}

// UpsertContestState creates or replaces a contest's state row.
func (s *MemStore) UpsertContestState(state models.ContestState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contestStates[state.ContestID] = state
	return nil
}

// ------------------- results -------------------

// UpsertResult replaces the result row for a registration; one row
// per registration, recomputation overwrites entirely.
func (s *MemStore) UpsertResult(res models.CompetitionResult) (models.CompetitionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.results[res.RegistrationID]; ok {
		res.ID = existing.ID
	} else if res.ID == "" {
		res.ID = uuid.NewString()
	}
	s.results[res.RegistrationID] = res
	return res, nil
}

// GetResultByRegistration returns the result row for a registration.
func (s *MemStore) GetResultByRegistration(registrationID string) (models.CompetitionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.results[registrationID]
	if !ok {
		return models.CompetitionResult{}, fmt.Errorf("result for registration %s: %w", registrationID, models.ErrNotFound)
	}
	return res, nil
}

// GetResultsByContest returns a contest's results ordered by
// coefficient points descending.
func (s *MemStore) GetResultsByContest(contestID string) ([]models.CompetitionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := s.contestResultsLocked(contestID)
	sort.Slice(results, func(i, j int) bool {
		return results[i].CoefficientPoints > results[j].CoefficientPoints
	})
	return results, nil
}

// ReplaceContestResults swaps a contest's entire result set in one
// critical section.
func (s *MemStore) ReplaceContestResults(contestID string, results []models.CompetitionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for regID, res := range s.results {
		if res.ContestID == contestID {
			delete(s.results, regID)
		}
	}
	for _, res := range results {
		if res.ID == "" {
			res.ID = uuid.NewString()
		}
		s.results[res.RegistrationID] = res
	}
	return nil
}

// GetRankedResults returns a contest's non-disqualified results
// ordered by the requested rank column ascending.
func (s *MemStore) GetRankedResults(contestID string, ranking models.RankingType) ([]models.CompetitionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []models.CompetitionResult
	for _, res := range s.contestResultsLocked(contestID) {
		if !res.IsDisqualified {
			results = append(results, res)
		}
	}

	place := func(res models.CompetitionResult) int {
		var p *int
		switch ranking {
		case models.RankingOpen:
			p = res.PlaceOpen
		case models.RankingAgeCategory:
			p = res.PlaceInAgeCategory
		case models.RankingWeightClass:
			p = res.PlaceInWeightClass
		}
		if p == nil {
			return int(^uint(0) >> 1) // unranked rows sort last
		}
		return *p
	}
	sort.Slice(results, func(i, j int) bool { return place(results[i]) < place(results[j]) })
	return results, nil
}

func (s *MemStore) contestResultsLocked(contestID string) []models.CompetitionResult {
	var results []models.CompetitionResult
	for _, res := range s.results {
		if res.ContestID == contestID {
			results = append(results, res)
		}
	}
	return results
}

// ------------------- plate sets and bars -------------------

// CreatePlateSet stores a plate denomination for a contest.
func (s *MemStore) CreatePlateSet(ps models.PlateSet) (models.PlateSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ps.ID == "" {
		ps.ID = uuid.NewString()
	}
	s.plateSets[ps.ID] = ps
	return ps, nil
}

// UpdatePlateSetQuantity changes the available quantity of a plate set.
func (s *MemStore) UpdatePlateSetQuantity(id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.plateSets[id]
	if !ok {
		return fmt.Errorf("plate set %s: %w", id, models.ErrNotFound)
	}
	ps.Quantity = quantity
	s.plateSets[id] = ps
	return nil
}

// GetPlateSets returns a contest's plate sets ordered by plate weight
// descending.
func (s *MemStore) GetPlateSets(contestID string) ([]models.PlateSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sets []models.PlateSet
	for _, ps := range s.plateSets {
		if ps.ContestID == contestID {
			sets = append(sets, ps)
		}
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].PlateWeight > sets[j].PlateWeight })
	return sets, nil
}

// DeletePlateSet removes a plate denomination.
func (s *MemStore) DeletePlateSet(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plateSets[id]; !ok {
		return fmt.Errorf("plate set %s: %w", id, models.ErrNotFound)
	}
	delete(s.plateSets, id)
	return nil
}

// GetBarWeights returns a contest's configured bar weights, falling
// back to the standard 20kg/15kg bars when unset.
func (s *MemStore) GetBarWeights(contestID string) (models.BarWeights, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bw, ok := s.barWeights[contestID]
	if !ok {
		return models.BarWeights{Mens: models.DefaultMensBar, Womens: models.DefaultWomensBar}, nil
	}
	return bw, nil
}

// SetBarWeights configures a contest's bar weights.
func (s *MemStore) SetBarWeights(contestID string, bw models.BarWeights) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.barWeights[contestID] = bw
	return nil
}
