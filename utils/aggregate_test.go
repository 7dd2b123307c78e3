package utils

import (
	"testing"

	"backend/models"
)

func entryWith(meal string, calories, protein float64) models.FoodLogEntry {
	e := models.FoodLogEntry{MealType: meal}
	e.Nutrition.Calories = calories
	e.Nutrition.Protein = protein
	return e
}

func TestSumNutrientsEmpty(t *testing.T) {
	if got := SumNutrients(nil); got != (models.NutrientVector{}) {
		t.Errorf("empty log should sum to the zero vector, got %+v", got)
	}
}

func TestSumNutrientsOrderIndependent(t *testing.T) {
	a := entryWith(models.MealBreakfast, 300, 12)
	b := entryWith(models.MealLunch, 450, 30)
	c := entryWith(models.MealDinner, 600, 25)

	forward := SumNutrients([]models.FoodLogEntry{a, b, c})
	reversed := SumNutrients([]models.FoodLogEntry{c, b, a})

	if forward != reversed {
		t.Errorf("sum depends on entry order: %+v vs %+v", forward, reversed)
	}
	if forward.Calories != 1350 || forward.Protein != 67 {
		t.Errorf("sum = %v kcal / %v g protein, want 1350 / 67", forward.Calories, forward.Protein)
	}
}

func TestSumNutrientsAdditive(t *testing.T) {
	morning := []models.FoodLogEntry{entryWith(models.MealBreakfast, 500, 20)}
	evening := []models.FoodLogEntry{entryWith(models.MealDinner, 700, 35)}

	whole := SumNutrients(append(append([]models.FoodLogEntry{}, morning...), evening...))
	partial := SumNutrients(morning)
	partial.Add(SumNutrients(evening))

	if whole != partial {
		t.Errorf("sum of the day differs from sum of its parts: %+v vs %+v", whole, partial)
	}

	// 1200 of a 2000 kcal target lands in the low tier.
	if got := ClassifyNutrient("calories", whole.Calories, 2000, WeightGoalNone); got != StatusLow {
		t.Errorf("day status = %v, want low", got)
	}
}

func TestGroupByMeal(t *testing.T) {
	entries := []models.FoodLogEntry{
		entryWith(models.MealLunch, 400, 20),
		entryWith(models.MealBreakfast, 300, 10),
		entryWith(models.MealLunch, 200, 5),
		entryWith("midnight", 150, 2), // unknown slot
	}

	groups := GroupByMeal(entries)

	if len(groups) != 4 {
		t.Fatalf("expected exactly four meal slots, got %d", len(groups))
	}
	if got := len(groups[models.MealLunch]); got != 2 {
		t.Errorf("lunch has %d entries, want 2", got)
	}
	if groups[models.MealLunch][0].Nutrition.Calories != 400 {
		t.Error("lunch entries lost their input order")
	}
	if got := len(groups[models.MealSnacks]); got != 1 {
		t.Errorf("unknown slot should land in snacks, got %d there", got)
	}
	if got := len(groups[models.MealDinner]); got != 0 {
		t.Errorf("dinner should be present but empty, got %d entries", got)
	}
}
