package utils

import (
	"testing"
	"time"

	"backend/models"
)

func testUser() *models.User {
	return &models.User{
		Gender:        "male",
		Birthday:      time.Now().AddDate(-30, 0, 0),
		HeightCm:      182,
		WeightKg:      80,
		ActivityLevel: models.ActivityModeratelyActive,
	}
}

func TestDefaultDailyValues(t *testing.T) {
	rdv := DefaultDailyValues()

	checks := map[string]float64{
		"calories":  2000,
		"protein":   50,
		"carbs":     300,
		"fat":       67,
		"fiber":     25,
		"sugar":     50,
		"sodium":    2300,
		"iron":      18,
		"vitamin_c": 90,
		"creatine":  0,
	}
	for name, want := range checks {
		if got := rdv.Get(name); got != want {
			t.Errorf("default %s = %v, want %v", name, got, want)
		}
	}
}

func TestBMR(t *testing.T) {
	if got := BMR(80, 182, 30, "male"); got != 1792.5 {
		t.Errorf("male BMR = %v, want 1792.5", got)
	}
	if got := BMR(60, 165, 25, "female"); got != 1345.25 {
		t.Errorf("female BMR = %v, want 1345.25", got)
	}
	// Anything that isn't "male" takes the female constant.
	if got := BMR(60, 165, 25, ""); got != 1345.25 {
		t.Errorf("unspecified-gender BMR = %v, want 1345.25", got)
	}
}

func TestCalculateDailyValuesNilUser(t *testing.T) {
	if got, want := CalculateDailyValues(nil), DefaultDailyValues(); got != want {
		t.Errorf("nil user should yield the default record, got %+v", got)
	}
}

func TestCalculateDailyValuesMaintenance(t *testing.T) {
	rdv := CalculateDailyValues(testUser())

	// BMR 1792.5 * 1.45 = 2599.125, rounded.
	if rdv.Calories != 2599 {
		t.Errorf("calories = %v, want 2599", rdv.Calories)
	}
	if rdv.Protein != 128 { // 80 kg * 1.6 g/kg
		t.Errorf("protein = %v, want 128", rdv.Protein)
	}
	if rdv.Fat != 72 { // 25% of calories / 9
		t.Errorf("fat = %v, want 72", rdv.Fat)
	}
	if rdv.Carbs != 360 { // (2599 - 128*4 - 72*9) / 4 = 359.75
		t.Errorf("carbs = %v, want 360", rdv.Carbs)
	}
}

func TestCalculateDailyValuesWeightGoal(t *testing.T) {
	t.Run("deficit", func(t *testing.T) {
		u := testUser()
		u.GoalWeightKg = 75
		u.GoalTimeframeWeeks = 10

		// 5 kg over 10 weeks = 1.10231 lbs/week, a 551.155 kcal/day deficit.
		if got := CalculateDailyValues(u).Calories; got != 2048 {
			t.Errorf("deficit calories = %v, want 2048", got)
		}
	})

	t.Run("surplus", func(t *testing.T) {
		u := testUser()
		u.GoalWeightKg = 85
		u.GoalTimeframeWeeks = 10

		if got := CalculateDailyValues(u).Calories; got != 3150 {
			t.Errorf("surplus calories = %v, want 3150", got)
		}
	})

	t.Run("clamped to floor", func(t *testing.T) {
		u := testUser()
		u.GoalWeightKg = 60
		u.GoalTimeframeWeeks = 2

		// 22 lbs/week clamps to 3; even then the target dips under the male
		// floor and is raised back to it.
		if got := CalculateDailyValues(u).Calories; got != 1500 {
			t.Errorf("floored calories = %v, want 1500", got)
		}
	})

	t.Run("floor for non-male", func(t *testing.T) {
		u := testUser()
		u.Gender = "female"
		u.WeightKg = 55
		u.HeightCm = 158
		u.GoalWeightKg = 45
		u.GoalTimeframeWeeks = 2

		if got := CalculateDailyValues(u).Calories; got != 1200 {
			t.Errorf("floored calories = %v, want 1200", got)
		}
	})
}

func TestCalculateDailyValuesGenderMicros(t *testing.T) {
	male := CalculateDailyValues(&models.User{Gender: "male"})
	if male.Iron != 8 || male.Zinc != 11 || male.VitaminA != 900 || male.VitaminC != 90 || male.VitaminK != 120 {
		t.Errorf("male micros = iron %v zinc %v vitA %v vitC %v vitK %v",
			male.Iron, male.Zinc, male.VitaminA, male.VitaminC, male.VitaminK)
	}

	female := CalculateDailyValues(&models.User{Gender: "female"})
	if female.Iron != 18 || female.Zinc != 8 || female.VitaminA != 700 || female.VitaminC != 75 || female.VitaminK != 90 {
		t.Errorf("female micros = iron %v zinc %v vitA %v vitC %v vitK %v",
			female.Iron, female.Zinc, female.VitaminA, female.VitaminC, female.VitaminK)
	}
}

func TestCalculateDailyValuesMuscleGoals(t *testing.T) {
	u := testUser()
	u.HealthGoals = "build_muscle"

	rdv := CalculateDailyValues(u)
	if rdv.Creatine != 3000 {
		t.Errorf("creatine = %v, want 3000", rdv.Creatine)
	}
	if rdv.Protein != 160 { // 80 kg * 2.0 g/kg
		t.Errorf("protein = %v, want 160", rdv.Protein)
	}

	u.HealthGoals = "strength_training"
	rdv = CalculateDailyValues(u)
	if rdv.Creatine != 3000 {
		t.Errorf("creatine = %v, want 3000", rdv.Creatine)
	}
	if rdv.Protein != 128 { // strength_training alone keeps 1.6 g/kg
		t.Errorf("protein = %v, want 128", rdv.Protein)
	}
}

func TestCalculateDailyValuesIncompleteProfile(t *testing.T) {
	// Without a full body profile the energy targets stay at the defaults,
	// but gender micros still apply.
	u := &models.User{Gender: "female", WeightKg: 60}

	rdv := CalculateDailyValues(u)
	if rdv.Calories != 2000 {
		t.Errorf("calories = %v, want default 2000", rdv.Calories)
	}
	if rdv.Iron != 18 {
		t.Errorf("iron = %v, want 18", rdv.Iron)
	}
}

func TestValidActivityLevel(t *testing.T) {
	for _, level := range []string{
		models.ActivitySedentary, models.ActivityLightlyActive,
		models.ActivityModeratelyActive, models.ActivityVeryActive,
		models.ActivityExtraActive,
	} {
		if !ValidActivityLevel(level) {
			t.Errorf("ValidActivityLevel(%q) = false", level)
		}
	}
	if ValidActivityLevel("couch_potato") {
		t.Error("ValidActivityLevel accepted an unknown level")
	}
}
