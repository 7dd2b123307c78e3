package models

import "gorm.io/gorm"

// PersonalFood is an entry in a user's own food database. Nutrition is stored
// per serving; logging N servings scales the vector by N.
type PersonalFood struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name  string `gorm:"not null;index" json:"name"`
	Brand string `json:"brand,omitempty"`

	ServingSize     float64 `json:"serving_size"` // e.g. 1
	ServingUnit     string  `gorm:"size:32" json:"serving_unit"`
	GramsPerServing float64 `json:"grams_per_serving,omitempty"`

	Nutrition NutrientVector `gorm:"embedded;embeddedPrefix:nutr_" json:"nutrition"`
}
