package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyActivityLog keeps the non-food side of a day: water and exercise.
type DailyActivityLog struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	Date      time.Time `gorm:"index;not null"` // local midnight
	Hydration float64   // glasses
	Exercise  float64   // minutes
}
