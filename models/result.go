// Package models defines data structures used across the application.
// File: models/result.go
package models

import "fmt"

// ----------------------- ranking type -----------------------

// RankingType selects one of the three parallel rankings kept per contest.
type RankingType string

const (
	RankingOpen        RankingType = "open"
	RankingAgeCategory RankingType = "age_category"
	RankingWeightClass RankingType = "weight_class"
)

// String returns the persisted form of the ranking type.
func (rt RankingType) String() string { return string(rt) }

// ParseRankingType maps a request string back to a RankingType.
func ParseRankingType(s string) (RankingType, error) {
	switch s {
	case "open":
		return RankingOpen, nil
	case "age_category":
		return RankingAgeCategory, nil
	case "weight_class":
		return RankingWeightClass, nil
	default:
		return "", fmt.Errorf("unknown ranking type %q", s)
	}
}

// ----------------------- result model -----------------------

// CompetitionResult is the derived scoring record for one registration.
// It is fully recomputed from attempts whenever standings can move; it
// is a materialized cache, never a source of truth. Best lifts are nil
// when the lifter has no successful attempt for that lift. Rank fields
// are nil for disqualified lifters, who are excluded from all rankings.
type CompetitionResult struct {
	ID             string `json:"id"`
	RegistrationID string `json:"registrationId"`
	ContestID      string `json:"contestId"`

	BestSquat    *float64 `json:"bestSquat,omitempty"`
	BestBench    *float64 `json:"bestBench,omitempty"`
	BestDeadlift *float64 `json:"bestDeadlift,omitempty"`

	TotalWeight       float64 `json:"totalWeight"`
	CoefficientPoints float64 `json:"coefficientPoints"`

	PlaceOpen          *int `json:"placeOpen,omitempty"`
	PlaceInAgeCategory *int `json:"placeInAgeCategory,omitempty"`
	PlaceInWeightClass *int `json:"placeInWeightClass,omitempty"`

	IsDisqualified          bool   `json:"isDisqualified"`
	DisqualificationReason  string `json:"disqualificationReason,omitempty"`
}
