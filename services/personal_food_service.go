package services

import (
	"errors"
	"fmt"
	"strings"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type PersonalFoodService struct{}

func NewPersonalFoodService() *PersonalFoodService { return &PersonalFoodService{} }

// PersonalFoodInput is the create/update payload for a personal food.
type PersonalFoodInput struct {
	Name            string                `json:"name" binding:"required"`
	Brand           string                `json:"brand"`
	ServingSize     float64               `json:"serving_size"`
	ServingUnit     string                `json:"serving_unit"`
	GramsPerServing float64               `json:"grams_per_serving"`
	Nutrition       models.NutrientVector `json:"nutrition"`
}

func (in *PersonalFoodInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if in.ServingSize <= 0 {
		return errors.New("serving_size must be positive")
	}
	return in.Nutrition.Validate()
}

func (s *PersonalFoodService) Create(userID uint, in PersonalFoodInput) (*models.PersonalFood, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	food := &models.PersonalFood{
		UserID:          userID,
		Name:            strings.TrimSpace(in.Name),
		Brand:           in.Brand,
		ServingSize:     in.ServingSize,
		ServingUnit:     in.ServingUnit,
		GramsPerServing: in.GramsPerServing,
		Nutrition:       in.Nutrition,
	}
	if err := config.DB.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func (s *PersonalFoodService) Update(userID, foodID uint, in PersonalFoodInput) (*models.PersonalFood, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var food models.PersonalFood
	if err := config.DB.
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error; err != nil {
		return nil, err
	}

	food.Name = strings.TrimSpace(in.Name)
	food.Brand = in.Brand
	food.ServingSize = in.ServingSize
	food.ServingUnit = in.ServingUnit
	food.GramsPerServing = in.GramsPerServing
	food.Nutrition = in.Nutrition

	if err := config.DB.Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *PersonalFoodService) Delete(userID, foodID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", foodID, userID).
		Delete(&models.PersonalFood{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *PersonalFoodService) Get(userID, foodID uint) (*models.PersonalFood, error) {
	var food models.PersonalFood
	err := config.DB.
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// List returns the user's whole food database, newest first. An optional
// query filters by name or brand, case-insensitively.
func (s *PersonalFoodService) List(userID uint, query string) ([]models.PersonalFood, error) {
	var foods []models.PersonalFood
	q := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + query + "%"
		q = q.Where("name ILIKE ? OR brand ILIKE ?", like, like)
	}
	err := q.Find(&foods).Error
	return foods, err
}

// LogSnapshot builds a log-entry nutrition snapshot for servings of this
// food: the per-serving vector scaled by servings/ServingSize.
func (s *PersonalFoodService) LogSnapshot(food *models.PersonalFood, servings float64) (models.NutrientVector, error) {
	if servings <= 0 {
		return models.NutrientVector{}, fmt.Errorf("servings must be positive")
	}
	return food.Nutrition.Scaled(servings / food.ServingSize), nil
}
