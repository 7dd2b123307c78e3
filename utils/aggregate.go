package utils

import "backend/models"

// SumNutrients sums the nutrition snapshots of all entries for a day. The
// empty list yields the all-zero vector; the result is order independent.
// Totals are recomputed from the current entry list on every request rather
// than maintained incrementally; day-sized lists are too small to cache.
func SumNutrients(entries []models.FoodLogEntry) models.NutrientVector {
	var total models.NutrientVector
	for i := range entries {
		total.Add(entries[i].Nutrition)
	}
	return total
}

// GroupByMeal partitions a day's entries into the four meal slots, preserving
// input order within each slot. Entries with an unknown slot land in snacks
// rather than being dropped.
func GroupByMeal(entries []models.FoodLogEntry) map[string][]models.FoodLogEntry {
	out := map[string][]models.FoodLogEntry{
		models.MealBreakfast: {},
		models.MealLunch:     {},
		models.MealDinner:    {},
		models.MealSnacks:    {},
	}
	for _, e := range entries {
		slot := e.MealType
		if !models.ValidMealType(slot) {
			slot = models.MealSnacks
		}
		out[slot] = append(out[slot], e)
	}
	return out
}
