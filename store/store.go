// Package store defines the storage collaborator consumed by the
// scoring services, and an in-memory implementation of it. The
// services never touch storage internals; everything goes through
// this interface so a relational backend can be swapped in without
// touching the scoring algorithms.
// File: store/store.go
package store

import (
	"go-meet-scoring/models"
)

// Store is the persistence contract for the scoring core. All
// mutations run under a single serialization point per store; meet
// operations are inherently sequential so no finer-grained locking
// is needed.
type Store interface {
	// competitors
	CreateCompetitor(c models.Competitor) (models.Competitor, error)
	GetCompetitor(id string) (models.Competitor, error)

	// registrations
	CreateRegistration(r models.Registration) (models.Registration, error)
	GetRegistration(id string) (models.Registration, error)
	GetRegistrationsByContest(contestID string) ([]models.Registration, error)

	// attempts
	UpsertAttemptWeight(registrationID string, lift models.LiftType, attemptNumber int, weight float64) (models.Attempt, error)
	GetAttempt(id string) (models.Attempt, error)
	GetAttemptsByRegistration(registrationID string) ([]models.Attempt, error)
	GetContestAttempts(contestID string) ([]models.Attempt, error)
	SetAttemptResult(id string, status models.AttemptStatus) error
	NextAttemptsInQueue(contestID string, lift models.LiftType, round int) ([]models.Attempt, error)
	DeleteAttempt(id string) error

	// contest state
	GetContestState(contestID string) (models.ContestState, error)
	UpsertContestState(state models.ContestState) error

	// results
	UpsertResult(res models.CompetitionResult) (models.CompetitionResult, error)
	GetResultByRegistration(registrationID string) (models.CompetitionResult, error)
	GetResultsByContest(contestID string) ([]models.CompetitionResult, error)
	ReplaceContestResults(contestID string, results []models.CompetitionResult) error
	GetRankedResults(contestID string, ranking models.RankingType) ([]models.CompetitionResult, error)

	// plate sets and bars
	CreatePlateSet(ps models.PlateSet) (models.PlateSet, error)
	UpdatePlateSetQuantity(id string, quantity int) error
	GetPlateSets(contestID string) ([]models.PlateSet, error)
	DeletePlateSet(id string) error
	GetBarWeights(contestID string) (models.BarWeights, error)
	SetBarWeights(contestID string, bw models.BarWeights) error
}
