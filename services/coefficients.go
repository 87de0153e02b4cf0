// Package services: services/coefficients.go
// Pure coefficient and category mappings. No side effects, no I/O;
// everything here is deterministic so registration-time snapshots stay
// reproducible.
package services

import (
	"strings"
	"time"

	"go-meet-scoring/logger"
)

// date format shared by birth dates and contest dates
const coefficientDateLayout = "2006-01-02"

// Age category labels.
const (
	CategoryJunior13  = "JUNIOR13"
	CategoryJunior16  = "JUNIOR16"
	CategoryJunior19  = "JUNIOR19"
	CategoryJunior23  = "JUNIOR23"
	CategorySenior    = "SENIOR"
	CategoryVeteran40 = "VETERAN40"
	CategoryVeteran50 = "VETERAN50"
	CategoryVeteran60 = "VETERAN60"
	CategoryVeteran70 = "VETERAN70"
)

// BodyweightCoefficient returns the body-weight adjustment factor for
// a lifter: 500 divided by a degree-5 polynomial in bodyweight, with
// separate coefficient sets per gender. Unknown genders get a neutral
// 1.0 so a malformed record never distorts scoring.
func BodyweightCoefficient(bodyweight float64, gender string) float64 {
	switch strings.ToLower(gender) {
	case "male", "m":
		return bodyweightPoly(bodyweight,
			-216.0475144, 16.2606339, -0.002388645, -0.00113732, 7.01863e-06, -1.291e-08)
	case "female", "f":
		return bodyweightPoly(bodyweight,
			594.31747775582, -27.23842536447, 0.82112226871, -0.00930733913, 4.731582e-05, -9.054e-08)
	default:
		return 1.0
	}
}

func bodyweightPoly(x, a, b, c, d, e, f float64) float64 {
	return 500.0 / (a + b*x + c*x*x + d*x*x*x + e*x*x*x*x + f*x*x*x*x*x)
}

// AgeCoefficient returns the age adjustment factor for a lifter as of
// the contest date. Unparseable birth dates are deliberately lenient:
// they log a warning and return 1.0 rather than failing, so a single
// malformed record cannot destabilise a live meet.
func AgeCoefficient(birthDate, contestDate string) float64 {
	age, ok := ageOnContestDate(birthDate, contestDate)
	if !ok {
		return 1.0
	}

	switch {
	// juniors (under 24)
	case age >= 13 && age <= 15:
		return 1.13
	case age >= 16 && age <= 18:
		return 1.08
	case age == 19:
		return 1.06
	case age >= 20 && age <= 23:
		return 1.03

	// seniors (24-39), no adjustment
	case age >= 24 && age <= 39:
		return 1.0

	// masters/veterans (40+)
	case age >= 40 && age <= 44:
		return 1.01
	case age >= 45 && age <= 49:
		return 1.02
	case age >= 50 && age <= 54:
		return 1.04
	case age >= 55 && age <= 59:
		return 1.06
	case age >= 60 && age <= 64:
		return 1.09
	case age >= 65 && age <= 69:
		return 1.12
	case age >= 70 && age <= 74:
		return 1.16
	case age >= 75 && age <= 79:
		return 1.21
	case age >= 80:
		return 1.27

	default:
		return 1.0
	}
}

// AgeCategory returns the named age bracket for a lifter as of the
// contest date. Defaults to SENIOR when the birth date cannot be parsed.
func AgeCategory(birthDate, contestDate string) string {
	age, ok := ageOnContestDate(birthDate, contestDate)
	if !ok {
		return CategorySenior
	}

	switch {
	case age >= 13 && age <= 15:
		return CategoryJunior13
	case age >= 16 && age <= 18:
		return CategoryJunior16
	case age == 19:
		return CategoryJunior19
	case age >= 20 && age <= 23:
		return CategoryJunior23
	case age >= 24 && age <= 39:
		return CategorySenior
	case age >= 40 && age <= 49:
		return CategoryVeteran40
	case age >= 50 && age <= 59:
		return CategoryVeteran50
	case age >= 60 && age <= 69:
		return CategoryVeteran60
	case age >= 70:
		return CategoryVeteran70
	default:
		return CategorySenior
	}
}

// ageOnContestDate computes whole years of age on the contest date.
// A bad birth date returns ok=false; a bad contest date falls back to
// today. Both are logged but never surfaced as errors.
func ageOnContestDate(birthDate, contestDate string) (int, bool) {
	birth, err := time.Parse(coefficientDateLayout, birthDate)
	if err != nil {
		logger.Warn.Printf("ageOnContestDate: unparseable birth date %q, using neutral default", birthDate)
		return 0, false
	}

	contest, err := time.Parse(coefficientDateLayout, contestDate)
	if err != nil {
		logger.Warn.Printf("ageOnContestDate: unparseable contest date %q, falling back to today", contestDate)
		contest = time.Now()
	}

	age := contest.Year() - birth.Year()
	if contest.Month() < birth.Month() ||
		(contest.Month() == birth.Month() && contest.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age, true
}

// weightClassStep is one rung of a weight-class ladder: bodyweights up
// to and including Limit map to Label.
type weightClassStep struct {
	Limit float64
	Label string
}

var mensWeightClasses = []weightClassStep{
	{52.0, "M_52"},
	{56.0, "M_56"},
	{60.0, "M_60"},
	{67.5, "M_67_5"},
	{75.0, "M_75"},
	{82.5, "M_82_5"},
	{90.0, "M_90"},
	{100.0, "M_100"},
	{110.0, "M_110"},
	{125.0, "M_125"},
	{140.0, "M_140"},
}

var womensWeightClasses = []weightClassStep{
	{47.0, "F_47"},
	{52.0, "F_52"},
	{57.0, "F_57"},
	{63.0, "F_63"},
	{72.0, "F_72"},
	{84.0, "F_84"},
}

// WeightClass maps a bodyweight to its weight-class label via an
// ascending threshold ladder, one ladder per gender. Upper bounds are
// inclusive; weights above the top threshold map to the "+" class.
// Unknown genders default to a mid-range men's class.
func WeightClass(bodyweight float64, gender string) string {
	switch strings.ToLower(gender) {
	case "male", "m":
		return classFromLadder(bodyweight, mensWeightClasses, "M_140_PLUS")
	case "female", "f":
		return classFromLadder(bodyweight, womensWeightClasses, "F_84_PLUS")
	default:
		return "M_75"
	}
}

func classFromLadder(bodyweight float64, ladder []weightClassStep, plusClass string) string {
	for _, step := range ladder {
		if bodyweight <= step.Limit {
			return step.Label
		}
	}
	return plusClass
}

// Points computes coefficient points: total weight lifted multiplied
// by the body-weight and age factors. Non-positive totals score zero.
func Points(totalWeight, bodyweightCoeff, ageCoeff float64) float64 {
	if totalWeight <= 0 {
		return 0
	}
	return totalWeight * bodyweightCoeff * ageCoeff
}
