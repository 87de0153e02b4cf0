// Package services: services/result_service.go
// ResultService derives competition results from attempts and keeps
// the three parallel rankings (open, age category, weight class).
package services

import (
	"errors"
	"sort"

	"go-meet-scoring/logger"
	"go-meet-scoring/models"
	"go-meet-scoring/store"
)

// ResultServiceInterface is the scoring surface consumed by the
// controllers.
type ResultServiceInterface interface {
	CalculateResult(registrationID string) (models.CompetitionResult, error)
	RecalculateAll(contestID string) ([]models.CompetitionResult, error)
	SetDisqualification(registrationID string, disqualified bool, reason string) (models.CompetitionResult, error)
	ExportRanking(contestID string, ranking models.RankingType) ([]models.CompetitionResult, error)
	ResultByRegistration(registrationID string) (models.CompetitionResult, error)
}

// ResultService is the storage-backed implementation.
type ResultService struct {
	store store.Store
}

// NewResultService creates a new ResultService instance.
func NewResultService(st store.Store) *ResultService {
	return &ResultService{store: st}
}

// CalculateResult recomputes one registration's result from its
// attempts and upserts it. A lift with no successful attempt
// contributes nothing to the total; coefficient points are
// total x bodyweight coefficient x age coefficient, with no rounding
// beyond double precision. The disqualification flag survives
// recomputation; it is administrative, not derived.
func (s *ResultService) CalculateResult(registrationID string) (models.CompetitionResult, error) {
	reg, err := s.store.GetRegistration(registrationID)
	if err != nil {
		return models.CompetitionResult{}, err
	}

	result, err := s.computeResult(reg)
	if err != nil {
		return models.CompetitionResult{}, err
	}
	return s.store.UpsertResult(result)
}

// RecalculateAll recomputes every registration's result in a contest
// and reassigns all three rankings, then swaps the contest's result
// set in one store call so readers never observe a partial re-rank.
// Safe to call redundantly; with no attempt changes it reproduces the
// same rows.
func (s *ResultService) RecalculateAll(contestID string) ([]models.CompetitionResult, error) {
	regs, err := s.store.GetRegistrationsByContest(contestID)
	if err != nil {
		return nil, err
	}

	results := make([]models.CompetitionResult, 0, len(regs))
	regByID := make(map[string]models.Registration, len(regs))
	for _, reg := range regs {
		res, err := s.computeResult(reg)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
		regByID[reg.ID] = reg
	}

	assignRankings(results, regByID)

	if err := s.store.ReplaceContestResults(contestID, results); err != nil {
		return nil, err
	}
	logger.Info.Printf("RecalculateAll: contest=%s re-ranked %d results", contestID, len(results))

	sort.Slice(results, func(i, j int) bool {
		return results[i].CoefficientPoints > results[j].CoefficientPoints
	})
	return results, nil
}

// SetDisqualification flags or unflags a registration and re-ranks
// the whole contest, since removing a lifter moves everyone below.
func (s *ResultService) SetDisqualification(registrationID string, disqualified bool, reason string) (models.CompetitionResult, error) {
	reg, err := s.store.GetRegistration(registrationID)
	if err != nil {
		return models.CompetitionResult{}, err
	}

	result, err := s.computeResult(reg)
	if err != nil {
		return models.CompetitionResult{}, err
	}
	result.IsDisqualified = disqualified
	result.DisqualificationReason = reason
	if !disqualified {
		result.DisqualificationReason = ""
	}
	if _, err := s.store.UpsertResult(result); err != nil {
		return models.CompetitionResult{}, err
	}

	logger.Info.Printf("SetDisqualification: registration=%s disqualified=%t reason=%q",
		registrationID, disqualified, reason)
	if _, err := s.RecalculateAll(reg.ContestID); err != nil {
		return models.CompetitionResult{}, err
	}
	return s.store.GetResultByRegistration(registrationID)
}

// ExportRanking returns a contest's results ordered by the requested
// rank column, rank ascending. Disqualified lifters are excluded.
func (s *ResultService) ExportRanking(contestID string, ranking models.RankingType) ([]models.CompetitionResult, error) {
	return s.store.GetRankedResults(contestID, ranking)
}

// ResultByRegistration returns the stored result row for one lifter.
func (s *ResultService) ResultByRegistration(registrationID string) (models.CompetitionResult, error) {
	return s.store.GetResultByRegistration(registrationID)
}

// computeResult builds a registration's result record without
// persisting it. Any existing disqualification flag is carried over.
func (s *ResultService) computeResult(reg models.Registration) (models.CompetitionResult, error) {
	attempts, err := s.store.GetAttemptsByRegistration(reg.ID)
	if err != nil {
		return models.CompetitionResult{}, err
	}

	bestSquat := bestLift(attempts, models.LiftSquat)
	bestBench := bestLift(attempts, models.LiftBench)
	bestDeadlift := bestLift(attempts, models.LiftDeadlift)

	total := 0.0
	for _, best := range []*float64{bestSquat, bestBench, bestDeadlift} {
		if best != nil {
			total += *best
		}
	}

	// registrations created before the coefficient snapshot existed
	// carry zeroes; treat those as neutral factors
	bwCoeff := reg.BodyweightCoefficient
	if bwCoeff == 0 {
		bwCoeff = 1.0
	}
	ageCoeff := reg.AgeCoefficient
	if ageCoeff == 0 {
		ageCoeff = 1.0
	}

	result := models.CompetitionResult{
		RegistrationID:    reg.ID,
		ContestID:         reg.ContestID,
		BestSquat:         bestSquat,
		BestBench:         bestBench,
		BestDeadlift:      bestDeadlift,
		TotalWeight:       total,
		CoefficientPoints: Points(total, bwCoeff, ageCoeff),
	}

	existing, err := s.store.GetResultByRegistration(reg.ID)
	switch {
	case err == nil:
		result.ID = existing.ID
		result.IsDisqualified = existing.IsDisqualified
		result.DisqualificationReason = existing.DisqualificationReason
	case !errors.Is(err, models.ErrNotFound):
		return models.CompetitionResult{}, err
	}
	return result, nil
}

// bestLift returns the heaviest Good attempt for one lift, or nil when
// the lifter has no successful attempt of that type.
func bestLift(attempts []models.Attempt, lift models.LiftType) *float64 {
	var best *float64
	for _, a := range attempts {
		if a.LiftType != lift || a.Status != models.AttemptGood {
			continue
		}
		if best == nil || a.Weight > *best {
			w := a.Weight
			best = &w
		}
	}
	return best
}

// assignRankings fills the three rank columns in place. The rank of a
// result is one plus the number of non-disqualified results in the
// same group with strictly greater coefficient points, so tied points
// share a rank and leave a gap in the sequence. Disqualified lifters
// carry no rank at all.
func assignRankings(results []models.CompetitionResult, regByID map[string]models.Registration) {
	for i := range results {
		if results[i].IsDisqualified {
			results[i].PlaceOpen = nil
			results[i].PlaceInAgeCategory = nil
			results[i].PlaceInWeightClass = nil
			continue
		}

		reg := regByID[results[i].RegistrationID]
		open, age, weight := 1, 1, 1
		for j := range results {
			if j == i || results[j].IsDisqualified {
				continue
			}
			if results[j].CoefficientPoints <= results[i].CoefficientPoints {
				continue
			}
			other := regByID[results[j].RegistrationID]
			open++
			if other.AgeCategory == reg.AgeCategory {
				age++
			}
			if other.WeightClass == reg.WeightClass {
				weight++
			}
		}
		results[i].PlaceOpen = intPtr(open)
		results[i].PlaceInAgeCategory = intPtr(age)
		results[i].PlaceInWeightClass = intPtr(weight)
	}
}

func intPtr(v int) *int { return &v }
