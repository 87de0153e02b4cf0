// Package services: services/registration_service.go
// RegistrationService creates contest entries, computing and freezing
// the coefficient snapshot at registration time.
package services

import (
	"go-meet-scoring/logger"
	"go-meet-scoring/models"
	"go-meet-scoring/store"
)

// RegistrationRequest carries the day-of data for one contest entry.
type RegistrationRequest struct {
	ContestID    string   `json:"contestId"`
	CompetitorID string   `json:"competitorId"`
	ContestDate  string   `json:"contestDate"` // YYYY-MM-DD, anchors the age coefficient
	Bodyweight   float64  `json:"bodyweight"`
	LotNumber    int      `json:"lotNumber"`
	EquipmentRaw       bool `json:"equipmentRaw"`
	EquipmentSinglePly bool `json:"equipmentSinglePly"`
	EquipmentMultiPly  bool `json:"equipmentMultiPly"`
	PersonalRecord  *float64 `json:"personalRecord,omitempty"`
	RackHeightSquat *int     `json:"rackHeightSquat,omitempty"`
	RackHeightBench *int     `json:"rackHeightBench,omitempty"`
}

// RegistrationServiceInterface is the registration surface consumed by
// the controllers.
type RegistrationServiceInterface interface {
	Register(req RegistrationRequest) (models.Registration, error)
	RegistrationsByContest(contestID string) ([]models.Registration, error)
	AddCompetitor(c models.Competitor) (models.Competitor, error)
}

// RegistrationService is the storage-backed implementation.
type RegistrationService struct {
	store store.Store
}

// NewRegistrationService creates a new RegistrationService instance.
func NewRegistrationService(st store.Store) *RegistrationService {
	return &RegistrationService{store: st}
}

// Register enters a competitor into a contest. The body-weight and age
// coefficients, age category and weight class are computed here and
// frozen onto the registration; later corrections to the competitor's
// data never rewrite them, so historical results stay stable.
func (s *RegistrationService) Register(req RegistrationRequest) (models.Registration, error) {
	if req.Bodyweight <= 0 {
		return models.Registration{}, models.NewValidationError("bodyweight", "must be positive")
	}

	competitor, err := s.store.GetCompetitor(req.CompetitorID)
	if err != nil {
		return models.Registration{}, err
	}

	reg := models.Registration{
		ContestID:    req.ContestID,
		CompetitorID: req.CompetitorID,
		AgeCategory:  AgeCategory(competitor.BirthDate, req.ContestDate),
		WeightClass:  WeightClass(req.Bodyweight, competitor.Gender),
		EquipmentRaw:       req.EquipmentRaw,
		EquipmentSinglePly: req.EquipmentSinglePly,
		EquipmentMultiPly:  req.EquipmentMultiPly,
		Bodyweight:     req.Bodyweight,
		LotNumber:      req.LotNumber,
		PersonalRecord: req.PersonalRecord,
		BodyweightCoefficient: BodyweightCoefficient(req.Bodyweight, competitor.Gender),
		AgeCoefficient:        AgeCoefficient(competitor.BirthDate, req.ContestDate),
		RackHeightSquat: req.RackHeightSquat,
		RackHeightBench: req.RackHeightBench,
	}

	created, err := s.store.CreateRegistration(reg)
	if err != nil {
		return models.Registration{}, err
	}
	logger.Info.Printf("Register: competitor=%s entered contest=%s as %s / %s (lot %d)",
		req.CompetitorID, req.ContestID, created.AgeCategory, created.WeightClass, created.LotNumber)
	return created, nil
}

// RegistrationsByContest lists a contest's entries in lot order.
func (s *RegistrationService) RegistrationsByContest(contestID string) ([]models.Registration, error) {
	return s.store.GetRegistrationsByContest(contestID)
}

// AddCompetitor stores a competitor record.
func (s *RegistrationService) AddCompetitor(c models.Competitor) (models.Competitor, error) {
	if c.FirstName == "" && c.LastName == "" {
		return models.Competitor{}, models.NewValidationError("name", "must not be empty")
	}
	return s.store.CreateCompetitor(c)
}
