package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
)

type FoodLogService struct {
	foods *PersonalFoodService
}

func NewFoodLogService(foods *PersonalFoodService) *FoodLogService {
	return &FoodLogService{foods: foods}
}

// LogEntryInput creates one entry for a day. Either PersonalFoodID picks a
// food from the user's database (quantity = servings), or Name+Nutrition
// carry an already-analyzed lookup result.
type LogEntryInput struct {
	PersonalFoodID uint `json:"personal_food_id"`

	Name         string                `json:"name"`
	Unit         string                `json:"unit"`
	Nutrition    models.NutrientVector `json:"nutrition"`
	Confidence   float64               `json:"confidence"`
	GramsPerUnit float64               `json:"grams_per_unit"`

	Quantity float64 `json:"quantity" binding:"required"`
	MealType string  `json:"meal_type" binding:"required"`
}

func dayStartLocal(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// AddEntry appends one entry to the user's log for date.
func (s *FoodLogService) AddEntry(userID uint, date time.Time, in LogEntryInput) (*models.FoodLogEntry, error) {
	if in.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if !models.ValidMealType(in.MealType) {
		return nil, fmt.Errorf("invalid meal_type %q", in.MealType)
	}

	entry := &models.FoodLogEntry{
		UserID:   userID,
		Date:     dayStartLocal(date),
		Quantity: in.Quantity,
		MealType: in.MealType,
	}

	if in.PersonalFoodID != 0 {
		food, err := s.foods.Get(userID, in.PersonalFoodID)
		if err != nil {
			return nil, fmt.Errorf("personal food not found: %w", err)
		}
		snapshot, err := s.foods.LogSnapshot(food, in.Quantity)
		if err != nil {
			return nil, err
		}
		entry.Name = food.Name
		entry.Unit = food.ServingUnit
		entry.Nutrition = snapshot
		entry.Confidence = 1
		if food.ServingSize > 0 {
			entry.GramsPerUnit = food.GramsPerServing / food.ServingSize
		}
	} else {
		if in.Name == "" {
			return nil, errors.New("name is required when personal_food_id is not set")
		}
		if in.Confidence < 0 || in.Confidence > 1 {
			return nil, errors.New("confidence must be within [0,1]")
		}
		if err := in.Nutrition.Validate(); err != nil {
			return nil, err
		}
		entry.Name = in.Name
		entry.Unit = in.Unit
		entry.Nutrition = in.Nutrition
		entry.Confidence = in.Confidence
		entry.GramsPerUnit = in.GramsPerUnit
	}

	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	RefreshDailyProgress(userID, entry.Date)
	return entry, nil
}

// ListDay returns all entries logged for one date, oldest first.
func (s *FoodLogService) ListDay(userID uint, date time.Time) ([]models.FoodLogEntry, error) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	var entries []models.FoodLogEntry
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

// UpdateEntryInput edits one entry. A quantity change rescales the stored
// nutrition snapshot by newQuantity/oldQuantity.
type UpdateEntryInput struct {
	Quantity float64 `json:"quantity"`
	MealType string  `json:"meal_type"`
}

func (s *FoodLogService) UpdateEntry(userID, entryID uint, in UpdateEntryInput) (*models.FoodLogEntry, error) {
	var entry models.FoodLogEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}

	if in.MealType != "" {
		if !models.ValidMealType(in.MealType) {
			return nil, fmt.Errorf("invalid meal_type %q", in.MealType)
		}
		entry.MealType = in.MealType
	}

	if in.Quantity != 0 && in.Quantity != entry.Quantity {
		if in.Quantity < 0 {
			return nil, errors.New("quantity must be positive")
		}
		if entry.Quantity > 0 {
			entry.Nutrition.Scale(in.Quantity / entry.Quantity)
		}
		entry.Quantity = in.Quantity
	}

	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}
	RefreshDailyProgress(userID, entry.Date)
	return &entry, nil
}

func (s *FoodLogService) DeleteEntry(userID, entryID uint) error {
	var entry models.FoodLogEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return err
	}
	if err := config.DB.Delete(&entry).Error; err != nil {
		return err
	}
	RefreshDailyProgress(userID, entry.Date)
	return nil
}

// GetEntry fetches one entry scoped to the user.
func (s *FoodLogService) GetEntry(userID, entryID uint) (*models.FoodLogEntry, error) {
	var entry models.FoodLogEntry
	err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, err // may be gorm.ErrRecordNotFound
	}
	return &entry, nil
}
