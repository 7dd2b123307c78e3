package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal slots a log entry can belong to.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnacks    = "snacks"
)

// ValidMealType reports whether t is one of the four meal slots.
func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks:
		return true
	}
	return false
}

// FoodLogEntry is one food eaten on one day. The nutrition snapshot is taken
// at log time (from a personal food or a lookup analysis) so later edits to
// the source food don't rewrite history. Editing Quantity rescales the whole
// snapshot by newQty/oldQty.
type FoodLogEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null" json:"user_id"`
	Date   time.Time `gorm:"index;not null" json:"date"` // local midnight of the log day

	Name     string  `gorm:"not null" json:"name"`
	Quantity float64 `json:"quantity"` // must be positive
	Unit     string  `gorm:"size:32" json:"unit"`
	MealType string  `gorm:"size:16;index" json:"meal_type"`

	// Confidence of the lookup that produced the snapshot, in [0,1].
	// 1 for entries copied from the personal food database.
	Confidence float64 `json:"confidence"`

	// GramsPerUnit converts Quantity×Unit to grams when known (0 = unknown).
	GramsPerUnit float64 `json:"grams_per_unit,omitempty"`

	Nutrition NutrientVector `gorm:"embedded;embeddedPrefix:nutr_" json:"nutrition"`
}
