package utils

import (
	"math"

	"backend/models"
)

// activityMultipliers maps profile activity levels to the factor applied to
// BMR when deriving maintenance calories. Also the validation source for
// activity-level input.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary:        1.15,
	models.ActivityLightlyActive:    1.30,
	models.ActivityModeratelyActive: 1.45,
	models.ActivityVeryActive:       1.60,
	models.ActivityExtraActive:      1.75,
}

// ValidActivityLevel reports whether level is a known activity level.
func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}

const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarb    = 4.0
	kcalPerGramFat     = 9.0

	kcalPerPoundBodyWeight = 3500.0
	poundsPerKg            = 2.20462
	maxWeeklyDeltaLbs      = 3.0 // safe cap on weekly weight change

	calorieFloorMale   = 1500.0
	calorieFloorOther  = 1200.0
	fatCalorieFraction = 0.25

	proteinPerKg             = 1.6
	proteinPerKgMuscleGoal   = 2.0
	creatineTargetMuscleGoal = 3000.0 // mg
)

// DefaultDailyValues returns the fixed population targets used when no
// profile is available. Mineral/vitamin values follow standard adult daily
// values; mono/poly fat carry no target (0 means the classifier reports
// neutral).
func DefaultDailyValues() models.NutrientVector {
	var rdv models.NutrientVector
	rdv.Calories = 2000
	rdv.Protein = 50
	rdv.Carbs = 300
	rdv.Fat = 67
	rdv.Fiber = 25
	rdv.Sugar = 50
	rdv.SaturatedFat = 20
	rdv.TransFat = 2
	rdv.Cholesterol = 300
	rdv.Sodium = 2300
	rdv.Potassium = 4700
	rdv.Calcium = 1000
	rdv.Iron = 18
	rdv.Magnesium = 420
	rdv.Phosphorus = 700
	rdv.Zinc = 11
	rdv.Copper = 0.9
	rdv.Manganese = 2.3
	rdv.Selenium = 55
	rdv.VitaminA = 900
	rdv.VitaminC = 90
	rdv.VitaminD = 20
	rdv.VitaminE = 15
	rdv.VitaminK = 120
	rdv.Thiamin = 1.2
	rdv.Riboflavin = 1.3
	rdv.Niacin = 16
	rdv.VitaminB6 = 1.7
	rdv.Folate = 400
	rdv.VitaminB12 = 2.4
	rdv.PantothenicAcid = 5
	rdv.Choline = 550
	return rdv
}

// BMR computes basal metabolic rate via Mifflin-St Jeor. gender "male" takes
// the +5 constant, anything else -161.
func BMR(weightKg, heightCm float64, ageYears int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "male" {
		return base + 5
	}
	return base - 161
}

// CalculateDailyValues derives per-nutrient targets from a profile, falling
// back to DefaultDailyValues field by field. A nil user yields the default
// record exactly. It never fails: missing profile fields simply leave the
// corresponding defaults in place.
func CalculateDailyValues(u *models.User) models.NutrientVector {
	rdv := DefaultDailyValues()
	if u == nil {
		return rdv
	}

	// Gender-conditioned micronutrient targets.
	switch u.Gender {
	case "male":
		rdv.Iron = 8
		rdv.Zinc = 11
		rdv.VitaminA = 900
		rdv.VitaminC = 90
		rdv.VitaminK = 120
	case "female":
		rdv.Iron = 18
		rdv.Zinc = 8
		rdv.VitaminA = 700
		rdv.VitaminC = 75
		rdv.VitaminK = 90
	}

	if u.HasHealthGoal(models.GoalBuildMuscle) || u.HasHealthGoal(models.GoalStrengthTraining) {
		rdv.Creatine = creatineTargetMuscleGoal
	}

	// Personalized energy targets need the full body profile; otherwise the
	// defaults above stand.
	mult, ok := activityMultipliers[u.ActivityLevel]
	if !ok || u.WeightKg <= 0 || u.HeightCm <= 0 || u.Birthday.IsZero() {
		return rdv
	}

	age := CalculateAge(u.Birthday)
	maintenance := BMR(u.WeightKg, u.HeightCm, age, u.Gender) * mult

	target := maintenance
	if u.GoalWeightKg > 0 && u.GoalTimeframeWeeks > 0 {
		currentLbs := u.WeightKg * poundsPerKg
		goalLbs := u.GoalWeightKg * poundsPerKg
		weeklyDeltaLbs := (currentLbs - goalLbs) / u.GoalTimeframeWeeks
		if weeklyDeltaLbs > maxWeeklyDeltaLbs {
			weeklyDeltaLbs = maxWeeklyDeltaLbs
		} else if weeklyDeltaLbs < -maxWeeklyDeltaLbs {
			weeklyDeltaLbs = -maxWeeklyDeltaLbs
		}
		target = maintenance - weeklyDeltaLbs*kcalPerPoundBodyWeight/7.0
	}

	floor := calorieFloorOther
	if u.Gender == "male" {
		floor = calorieFloorMale
	}
	if target < floor {
		target = floor
	}

	rdv.Calories = math.Round(target)

	perKg := proteinPerKg
	if u.HasHealthGoal(models.GoalBuildMuscle) {
		perKg = proteinPerKgMuscleGoal
	}
	rdv.Protein = math.Round(u.WeightKg * perKg)

	rdv.Fat = math.Round(rdv.Calories * fatCalorieFraction / kcalPerGramFat)

	carbKcal := rdv.Calories - rdv.Protein*kcalPerGramProtein - rdv.Fat*kcalPerGramFat
	if carbKcal < 0 {
		carbKcal = 0
	}
	rdv.Carbs = math.Round(carbKcal / kcalPerGramCarb)

	return rdv
}
