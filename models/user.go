package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Activity levels accepted on the profile. Keys of the RDV activity
// multiplier table in utils.
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly_active"
	ActivityModeratelyActive = "moderately_active"
	ActivityVeryActive       = "very_active"
	ActivityExtraActive      = "extra_active"
)

// Health-goal tags that influence derived targets.
const (
	GoalBuildMuscle      = "build_muscle"
	GoalStrengthTraining = "strength_training"
)

type User struct {
	gorm.Model
	UserID   string `gorm:"uniqueIndex" json:"user_id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Profile fields the RDV calculator reads. Zero values mean "not set"
	// and fall back to population defaults field by field.
	Birthday      time.Time `json:"birthday"`
	Gender        string    `gorm:"size:16" json:"gender"` // "male" | "female"
	HeightCm      float64   `json:"height_cm"`
	WeightKg      float64   `json:"weight_kg"`
	ActivityLevel string    `gorm:"size:32" json:"activity_level"`

	// Optional weight goal: target weight plus timeframe in weeks.
	GoalWeightKg       float64 `json:"goal_weight_kg"`
	GoalTimeframeWeeks float64 `json:"goal_timeframe_weeks"`

	// Comma-separated health-goal tags, e.g. "build_muscle,strength_training".
	HealthGoals string `json:"health_goals"`

	ProfilePicture string `json:"profile_picture"`

	MFAEnabled    bool      `json:"mfa_enabled"`
	MFACode       string    `json:"-"`
	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`

	Disabled  bool `gorm:"default:false" json:"-"`
	Onboarded bool `json:"onboarded"`
}

// HealthGoalTags splits the stored comma list into trimmed tags.
func (u *User) HealthGoalTags() []string {
	if u.HealthGoals == "" {
		return nil
	}
	parts := strings.Split(u.HealthGoals, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// HasHealthGoal reports whether the user tagged the given goal.
func (u *User) HasHealthGoal(goal string) bool {
	for _, t := range u.HealthGoalTags() {
		if t == goal {
			return true
		}
	}
	return false
}
