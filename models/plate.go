// Package models defines data structures used across the application.
// File: models/plate.go
package models

// ----------------------- plate set model -----------------------

// PlateSet is one plate denomination available at the venue for a
// contest: its weight, how many are on hand, and the display colour.
type PlateSet struct {
	ID          string  `json:"id"`
	ContestID   string  `json:"contestId"`
	PlateWeight float64 `json:"plateWeight"`
	Quantity    int     `json:"quantity"`
	Color       string  `json:"color"`
}

// ----------------------- plate calculation -----------------------

// PlateCount is one denomination used in a loading, with the number
// of plates per side of the bar.
type PlateCount struct {
	Weight float64 `json:"weight"`
	Count  int     `json:"count"`
}

// PlateCalculation is the loading for a target bar weight: the plates
// per side (largest first), whether the target is exactly achievable,
// the achievable total, and the minimum increment the inventory allows.
// TargetWeight and BarWeight echo the inputs for display purposes.
type PlateCalculation struct {
	Plates       []PlateCount `json:"plates"`
	Exact        bool         `json:"exact"`
	Total        float64      `json:"total"`
	Increment    float64      `json:"increment"`
	TargetWeight float64      `json:"targetWeight"`
	BarWeight    float64      `json:"barWeight"`
}
