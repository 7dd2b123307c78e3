package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyProgress is a per-day snapshot of aggregated intake, rewritten whenever
// the day's log changes. Analytics reads these rows instead of re-summing
// historical logs.
type DailyProgress struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	Calories     float64
	Protein      float64
	Carbs        float64
	Fat          float64
	Fiber        float64
	Sugar        float64
	SaturatedFat float64
	Sodium       float64
	Cholesterol  float64

	Hydration float64
	Exercise  float64
}
