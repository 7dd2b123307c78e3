package utils

import (
	"math"

	"backend/models"
)

// NutrientStatus is the display tier of one nutrient against its daily value.
type NutrientStatus string

const (
	StatusOnTarget NutrientStatus = "on_target"
	StatusPartial  NutrientStatus = "partial"
	StatusLow      NutrientStatus = "low"
	StatusNeutral  NutrientStatus = "neutral"
)

// WeightGoalStatus is the direction the user's weight goal implies for the
// calorie tier.
type WeightGoalStatus string

const (
	WeightGoalNone     WeightGoalStatus = ""
	WeightGoalLose     WeightGoalStatus = "lose"
	WeightGoalGain     WeightGoalStatus = "gain"
	WeightGoalMaintain WeightGoalStatus = "maintain"
)

// upperBoundNutrients are ceilings: exceeding the daily value is the bad
// direction. Everything else in the vector is a floor.
var upperBoundNutrients = map[string]bool{
	"sugar":         true,
	"saturated_fat": true,
	"trans_fat":     true,
	"cholesterol":   true,
	"sodium":        true,
}

// IsUpperBound reports whether the named nutrient is classified against a
// ceiling rather than a floor.
func IsUpperBound(name string) bool {
	return upperBoundNutrients[name]
}

// ClassifyLowerBound tiers a more-is-better nutrient. A recommended value of
// 0 means "no target" and always yields neutral; that also guards the
// division.
func ClassifyLowerBound(current, recommended float64) NutrientStatus {
	if recommended <= 0 {
		return StatusNeutral
	}
	ratio := current / recommended
	switch {
	case ratio >= 1.0:
		return StatusOnTarget
	case ratio >= 0.7:
		return StatusPartial
	default:
		return StatusLow
	}
}

// ClassifyUpperBound tiers a less-is-better nutrient against its ceiling.
// Exactly at the limit still counts as on target; only strictly above it is
// exceeded.
func ClassifyUpperBound(current, limit float64) NutrientStatus {
	if limit <= 0 {
		return StatusNeutral
	}
	switch {
	case current > limit:
		return StatusLow
	case current > 0.8*limit:
		return StatusPartial
	default:
		return StatusOnTarget
	}
}

// ClassifyCalories tiers calorie intake. With a weight-goal direction the
// bands shift: overeating is the error case when losing, undereating when
// gaining, and either direction beyond 10% is flagged when maintaining.
// Without a direction calories tier like any floor nutrient.
func ClassifyCalories(current, recommended float64, goal WeightGoalStatus) NutrientStatus {
	if recommended <= 0 {
		return StatusNeutral
	}
	ratio := current / recommended
	switch goal {
	case WeightGoalLose:
		switch {
		case ratio > 1.05:
			return StatusLow
		case ratio > 1.0:
			return StatusPartial
		default:
			return StatusOnTarget
		}
	case WeightGoalGain:
		switch {
		case ratio < 0.90:
			return StatusLow
		case ratio < 1.0:
			return StatusPartial
		default:
			return StatusOnTarget
		}
	case WeightGoalMaintain:
		if math.Abs(ratio-1.0) > 0.10 {
			return StatusPartial
		}
		return StatusOnTarget
	default:
		return ClassifyLowerBound(current, recommended)
	}
}

// ClassifyNutrient routes one nutrient to the right tier rule by name.
func ClassifyNutrient(name string, current, recommended float64, goal WeightGoalStatus) NutrientStatus {
	if name == "calories" {
		return ClassifyCalories(current, recommended, goal)
	}
	if IsUpperBound(name) {
		return ClassifyUpperBound(current, recommended)
	}
	return ClassifyLowerBound(current, recommended)
}

// ClassifyTotals tiers every vector field of totals against rdv.
func ClassifyTotals(totals, rdv models.NutrientVector, goal WeightGoalStatus) map[string]NutrientStatus {
	out := make(map[string]NutrientStatus, len(models.NutrientFields))
	for _, f := range models.NutrientFields {
		out[f.Name] = ClassifyNutrient(f.Name, totals.Get(f.Name), rdv.Get(f.Name), goal)
	}
	return out
}

// DeriveWeightGoalStatus decides lose/gain/maintain by comparing current
// weight to the goal weight with a 1% tolerance band. A profile without a
// goal (or without a weight) maintains; a nil user has no direction at all.
func DeriveWeightGoalStatus(u *models.User) WeightGoalStatus {
	if u == nil {
		return WeightGoalNone
	}
	if u.GoalWeightKg <= 0 || u.WeightKg <= 0 {
		return WeightGoalMaintain
	}
	tolerance := 0.01 * u.GoalWeightKg
	diff := u.WeightKg - u.GoalWeightKg
	switch {
	case diff > tolerance:
		return WeightGoalLose
	case diff < -tolerance:
		return WeightGoalGain
	default:
		return WeightGoalMaintain
	}
}
