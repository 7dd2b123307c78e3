package utils

import (
	"testing"

	"backend/models"
)

func TestClassifyLowerBound(t *testing.T) {
	tests := []struct {
		current, recommended float64
		want                 NutrientStatus
	}{
		{50, 50, StatusOnTarget},
		{60, 50, StatusOnTarget},
		{47.5, 50, StatusPartial}, // ratio 0.95
		{35, 50, StatusPartial},   // ratio 0.70, inclusive
		{34.5, 50, StatusLow},     // ratio 0.69
		{0, 50, StatusLow},
		{0, 0, StatusNeutral},
		{10, 0, StatusNeutral},
	}
	for _, tt := range tests {
		if got := ClassifyLowerBound(tt.current, tt.recommended); got != tt.want {
			t.Errorf("ClassifyLowerBound(%v, %v) = %v, want %v", tt.current, tt.recommended, got, tt.want)
		}
	}
}

func TestClassifyUpperBound(t *testing.T) {
	tests := []struct {
		current, limit float64
		want           NutrientStatus
	}{
		{51, 50, StatusLow},
		{50, 50, StatusPartial}, // at the limit is not exceeded
		{41, 50, StatusPartial},
		{40, 50, StatusOnTarget}, // exactly 0.8x
		{0, 50, StatusOnTarget},
		{10, 0, StatusNeutral},
	}
	for _, tt := range tests {
		if got := ClassifyUpperBound(tt.current, tt.limit); got != tt.want {
			t.Errorf("ClassifyUpperBound(%v, %v) = %v, want %v", tt.current, tt.limit, got, tt.want)
		}
	}
}

func TestClassifyCalories(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		goal    WeightGoalStatus
		want    NutrientStatus
	}{
		{"lose over", 2120, WeightGoalLose, StatusLow},       // ratio 1.06
		{"lose at band", 2100, WeightGoalLose, StatusPartial}, // ratio 1.05
		{"lose under", 1900, WeightGoalLose, StatusOnTarget},
		{"gain far under", 1700, WeightGoalGain, StatusLow},  // ratio 0.85
		{"gain near", 1900, WeightGoalGain, StatusPartial},   // ratio 0.95
		{"gain over", 2200, WeightGoalGain, StatusOnTarget},
		{"maintain under band", 1780, WeightGoalMaintain, StatusPartial}, // ratio 0.89
		{"maintain in band", 2190, WeightGoalMaintain, StatusOnTarget},   // ratio 1.095
		{"maintain over band", 2220, WeightGoalMaintain, StatusPartial},  // ratio 1.11
		{"no goal low", 1380, WeightGoalNone, StatusLow}, // plain floor rule, 0.69
		{"no goal partial", 1500, WeightGoalNone, StatusPartial},
	}
	for _, tt := range tests {
		if got := ClassifyCalories(tt.current, 2000, tt.goal); got != tt.want {
			t.Errorf("%s: ClassifyCalories(%v, 2000, %q) = %v, want %v", tt.name, tt.current, tt.goal, got, tt.want)
		}
	}

	if got := ClassifyCalories(1500, 0, WeightGoalLose); got != StatusNeutral {
		t.Errorf("zero recommendation = %v, want neutral", got)
	}
}

func TestClassifyNutrientRouting(t *testing.T) {
	// sugar is a ceiling: 60 of 50 is exceeded.
	if got := ClassifyNutrient("sugar", 60, 50, WeightGoalNone); got != StatusLow {
		t.Errorf("sugar = %v, want low", got)
	}
	// protein is a floor: 60 of 50 is on target.
	if got := ClassifyNutrient("protein", 60, 50, WeightGoalNone); got != StatusOnTarget {
		t.Errorf("protein = %v, want on_target", got)
	}
	// calories respect the goal direction.
	if got := ClassifyNutrient("calories", 2120, 2000, WeightGoalLose); got != StatusLow {
		t.Errorf("calories = %v, want low", got)
	}
}

func TestClassifyTotals(t *testing.T) {
	var totals models.NutrientVector
	totals.Calories = 1200
	totals.Sugar = 20

	rdv := DefaultDailyValues()
	statuses := ClassifyTotals(totals, rdv, WeightGoalNone)

	if statuses["calories"] != StatusLow { // 1200/2000 = 0.6
		t.Errorf("calories status = %v, want low", statuses["calories"])
	}
	if statuses["sugar"] != StatusOnTarget { // 20 of 50, under 0.8x
		t.Errorf("sugar status = %v, want on_target", statuses["sugar"])
	}
	if statuses["creatine"] != StatusNeutral { // no target
		t.Errorf("creatine status = %v, want neutral", statuses["creatine"])
	}
	if statuses["protein"] != StatusLow {
		t.Errorf("protein status = %v, want low", statuses["protein"])
	}
}

func TestDeriveWeightGoalStatus(t *testing.T) {
	if got := DeriveWeightGoalStatus(nil); got != WeightGoalNone {
		t.Errorf("nil user = %q, want none", got)
	}

	tests := []struct {
		name             string
		weight, goal     float64
		want             WeightGoalStatus
	}{
		{"no goal", 80, 0, WeightGoalMaintain},
		{"above goal", 80, 75, WeightGoalLose},
		{"below goal", 74, 75, WeightGoalGain},
		{"within tolerance above", 75.5, 75, WeightGoalMaintain}, // 1% of 75 = 0.75
		{"within tolerance below", 74.5, 75, WeightGoalMaintain},
	}
	for _, tt := range tests {
		u := &models.User{WeightKg: tt.weight, GoalWeightKg: tt.goal}
		if got := DeriveWeightGoalStatus(u); got != tt.want {
			t.Errorf("%s: DeriveWeightGoalStatus = %q, want %q", tt.name, got, tt.want)
		}
	}
}
