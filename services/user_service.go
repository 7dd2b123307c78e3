package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

// ProfileInput is the profile-update payload. Zero values leave fields
// untouched.
type ProfileInput struct {
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Birthday           string   `json:"birthday"` // YYYY-MM-DD
	Gender             string   `json:"gender"`
	HeightCm           float64  `json:"height_cm"`
	WeightKg           float64  `json:"weight_kg"`
	ActivityLevel      string   `json:"activity_level"`
	GoalWeightKg       *float64 `json:"goal_weight_kg"`
	GoalTimeframeWeeks *float64 `json:"goal_timeframe_weeks"`
	HealthGoals        []string `json:"health_goals"`
	ProfilePicture     string   `json:"profile_picture"`
	Onboarded          bool     `json:"onboarded"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	out := map[string]interface{}{
		"id":                   user.ID,
		"user_id":              user.UserID,
		"email":                user.Email,
		"first_name":           user.FirstName,
		"last_name":            user.LastName,
		"birthday":             user.Birthday.Format("2006-01-02"),
		"age":                  age,
		"gender":               user.Gender,
		"height_cm":            user.HeightCm,
		"weight_kg":            user.WeightKg,
		"activity_level":       user.ActivityLevel,
		"goal_weight_kg":       user.GoalWeightKg,
		"goal_timeframe_weeks": user.GoalTimeframeWeeks,
		"health_goals":         user.HealthGoalTags(),
		"profile_picture":      user.ProfilePicture,
		"mfa_enabled":          user.MFAEnabled,
		"onboarded":            user.Onboarded,
		"weight_goal_status":   utils.DeriveWeightGoalStatus(&user),
	}

	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}

	return out, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}

	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.Gender != "" {
		user.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.ActivityLevel != "" {
		if !utils.ValidActivityLevel(input.ActivityLevel) {
			return fmt.Errorf("unknown activity level %q", input.ActivityLevel)
		}
		user.ActivityLevel = input.ActivityLevel
	}
	if input.GoalWeightKg != nil {
		user.GoalWeightKg = *input.GoalWeightKg
	}
	if input.GoalTimeframeWeeks != nil {
		user.GoalTimeframeWeeks = *input.GoalTimeframeWeeks
	}
	if input.HealthGoals != nil {
		user.HealthGoals = strings.Join(input.HealthGoals, ",")
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	user.Onboarded = input.Onboarded

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}

// CompleteUserOnboarding stores the body profile collected by the first-run
// flow and flips the onboarded flag.
func CompleteUserOnboarding(
	email string,
	birthday time.Time,
	gender string,
	heightCm, weightKg float64,
	activityLevel string,
	healthGoals []string,
	profilePictureBase64 string,
	mfaEnabled bool,
) error {
	var user models.User
	if err := config.DB.
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	if activityLevel != "" && !utils.ValidActivityLevel(activityLevel) {
		return fmt.Errorf("unknown activity level %q", activityLevel)
	}

	user.Birthday = birthday
	user.Gender = strings.ToLower(strings.TrimSpace(gender))
	user.HeightCm = heightCm
	user.WeightKg = weightKg
	user.ActivityLevel = activityLevel
	user.HealthGoals = strings.Join(healthGoals, ",")
	user.MFAEnabled = mfaEnabled

	if profilePictureBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(profilePictureBase64, "onboarding/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload profile picture: %w", err)
		}
		user.ProfilePicture = url
	}

	user.Onboarded = true

	return config.DB.Save(&user).Error
}
