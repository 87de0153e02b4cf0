// Package services: services/plate_service.go
// PlateService computes bar loadings from a contest's plate inventory
// and manages that inventory.
package services

import (
	"math"
	"strconv"
	"strings"

	"go-meet-scoring/logger"
	"go-meet-scoring/models"
	"go-meet-scoring/store"
)

// bar weight validation bounds, in kilograms
const (
	barWeightStep = 0.25
	maxBarWeight  = 100.0
)

// loadingEpsilon absorbs accumulated floating-point error when
// deciding whether a loading is exact.
const loadingEpsilon = 1e-9

// defaultPlateColor is used when a plate set is created without one.
const defaultPlateColor = "#374151"

// PlateServiceInterface is the plate-loading surface consumed by the
// controllers.
type PlateServiceInterface interface {
	CalculateLoading(contestID string, targetWeight float64, gender string) (models.PlateCalculation, error)
	AddPlateSet(contestID string, plateWeight float64, quantity int, color string) (models.PlateSet, error)
	UpdateQuantity(id string, quantity int) error
	ListPlateSets(contestID string) ([]models.PlateSet, error)
	RemovePlateSet(id string) error
	BarWeights(contestID string) (models.BarWeights, error)
	UpdateBarWeights(contestID string, mens, womens float64) error
	PlateColors(contestID string) (map[string]string, error)
}

// PlateService is the storage-backed implementation.
type PlateService struct {
	store store.Store
}

// NewPlateService creates a new PlateService instance.
func NewPlateService(st store.Store) *PlateService {
	return &PlateService{store: st}
}

// CalculateLoading computes the plates to put on each side of the bar
// for a target total weight. It fills greedily, largest plates first;
// real plate sets are denominationally well-behaved so greedy matches
// optimal, and the reproducible ordering matters more than chasing
// pathological inventories. When the target cannot be hit exactly the
// closest achievable total at or below it is returned with exact=false.
func (s *PlateService) CalculateLoading(contestID string, targetWeight float64, gender string) (models.PlateCalculation, error) {
	plateSets, err := s.store.GetPlateSets(contestID) // ordered weight descending
	if err != nil {
		return models.PlateCalculation{}, err
	}
	bars, err := s.store.GetBarWeights(contestID)
	if err != nil {
		return models.PlateCalculation{}, err
	}

	barWeight := bars.Mens
	switch strings.ToLower(gender) {
	case "female", "f":
		barWeight = bars.Womens
	}

	// minimum increment: two of the smallest plate actually on hand
	increment := 5.0
	smallest := math.MaxFloat64
	for _, ps := range plateSets {
		if ps.Quantity > 0 && ps.PlateWeight < smallest {
			smallest = ps.PlateWeight
		}
	}
	if smallest < math.MaxFloat64 {
		increment = smallest * 2.0
	}

	sideWeight := (targetWeight - barWeight) / 2.0
	if sideWeight <= 0 {
		return models.PlateCalculation{
			Plates:       []models.PlateCount{},
			Exact:        true,
			Total:        barWeight,
			Increment:    increment,
			TargetWeight: targetWeight,
			BarWeight:    barWeight,
		}, nil
	}

	remaining := sideWeight
	var used []models.PlateCount
	for _, ps := range plateSets {
		if ps.Quantity <= 0 || ps.PlateWeight > remaining+loadingEpsilon {
			continue
		}
		count := int(math.Floor(remaining / ps.PlateWeight))
		if count > ps.Quantity {
			count = ps.Quantity
		}
		if count > 0 {
			used = append(used, models.PlateCount{Weight: ps.PlateWeight, Count: count})
			remaining -= ps.PlateWeight * float64(count)
		}
	}

	calc := models.PlateCalculation{
		Plates:       used,
		Exact:        remaining < loadingEpsilon,
		Total:        (sideWeight-remaining)*2.0 + barWeight,
		Increment:    increment,
		TargetWeight: targetWeight,
		BarWeight:    barWeight,
	}
	if !calc.Exact {
		logger.Debug.Printf("CalculateLoading: contest=%s target=%.2f not exactly loadable, best=%.2f",
			contestID, targetWeight, calc.Total)
	}
	return calc, nil
}

// AddPlateSet registers a plate denomination for a contest.
func (s *PlateService) AddPlateSet(contestID string, plateWeight float64, quantity int, color string) (models.PlateSet, error) {
	if plateWeight <= 0 {
		return models.PlateSet{}, models.NewValidationError("plateWeight", "must be positive")
	}
	if quantity <= 0 {
		return models.PlateSet{}, models.NewValidationError("quantity", "must be positive")
	}
	if color == "" {
		color = defaultPlateColor
	}
	return s.store.CreatePlateSet(models.PlateSet{
		ContestID:   contestID,
		PlateWeight: plateWeight,
		Quantity:    quantity,
		Color:       color,
	})
}

// UpdateQuantity changes how many of a plate denomination are on hand.
// Zero is allowed; it keeps the denomination configured but unusable.
func (s *PlateService) UpdateQuantity(id string, quantity int) error {
	if quantity < 0 {
		return models.NewValidationError("quantity", "must not be negative")
	}
	return s.store.UpdatePlateSetQuantity(id, quantity)
}

// ListPlateSets returns a contest's plate inventory, heaviest first.
func (s *PlateService) ListPlateSets(contestID string) ([]models.PlateSet, error) {
	return s.store.GetPlateSets(contestID)
}

// RemovePlateSet deletes a plate denomination.
func (s *PlateService) RemovePlateSet(id string) error {
	return s.store.DeletePlateSet(id)
}

// BarWeights returns the contest's configured bar weights.
func (s *PlateService) BarWeights(contestID string) (models.BarWeights, error) {
	return s.store.GetBarWeights(contestID)
}

// UpdateBarWeights configures the men's and women's bar weights.
// Weights must be positive, at most 100kg, and in 0.25kg steps.
func (s *PlateService) UpdateBarWeights(contestID string, mens, womens float64) error {
	for field, w := range map[string]float64{"mensBarWeight": mens, "womensBarWeight": womens} {
		if w <= 0 || w > maxBarWeight {
			return models.NewValidationError(field, "must be between 0 and 100 kg")
		}
		steps := w / barWeightStep
		if math.Abs(steps-math.Round(steps)) > loadingEpsilon {
			return models.NewValidationError(field, "must be a multiple of 0.25 kg")
		}
	}
	return s.store.SetBarWeights(contestID, models.BarWeights{Mens: mens, Womens: womens})
}

// PlateColors maps plate weight to display colour for the loading
// graphic.
func (s *PlateService) PlateColors(contestID string) (map[string]string, error) {
	plateSets, err := s.store.GetPlateSets(contestID)
	if err != nil {
		return nil, err
	}
	colors := make(map[string]string, len(plateSets))
	for _, ps := range plateSets {
		colors[strconv.FormatFloat(ps.PlateWeight, 'f', -1, 64)] = ps.Color
	}
	return colors, nil
}
