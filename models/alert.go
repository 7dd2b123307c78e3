package models

import "time"

// Alert records a nutrient-limit warning raised while summarizing a day's log
// (e.g. sodium over its daily limit).
type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "warning" | "info"
	Nutrient  string    `gorm:"size:32"` // vector field name, empty for generic alerts
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
