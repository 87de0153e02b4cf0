// Package models defines data structures used across the application.
// File: models/registration.go
package models

// ----------------------- competitor model -----------------------

// Competitor is a person who may enter contests.
type Competitor struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`    // "Male" / "Female"
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
}

// ----------------------- registration model -----------------------

// Registration is a competitor's entry in one contest. The bodyweight
// and age coefficients are computed once at registration time and
// frozen; they are deliberately not recomputed if the competitor's
// data is later corrected, so historical results stay stable.
type Registration struct {
	ID           string `json:"id"`
	ContestID    string `json:"contestId"`
	CompetitorID string `json:"competitorId"`
	AgeCategory  string `json:"ageCategory"`
	WeightClass  string `json:"weightClass"`

	// equipment flags, not mutually exclusive
	EquipmentRaw      bool `json:"equipmentRaw"`
	EquipmentSinglePly bool `json:"equipmentSinglePly"`
	EquipmentMultiPly  bool `json:"equipmentMultiPly"`

	// day-of data
	Bodyweight     float64  `json:"bodyweight"`
	LotNumber      int      `json:"lotNumber"`
	PersonalRecord *float64 `json:"personalRecord,omitempty"`

	// frozen coefficient snapshot
	BodyweightCoefficient float64 `json:"bodyweightCoefficient"`
	AgeCoefficient        float64 `json:"ageCoefficient"`

	// rack heights
	RackHeightSquat *int `json:"rackHeightSquat,omitempty"`
	RackHeightBench *int `json:"rackHeightBench,omitempty"`
}
