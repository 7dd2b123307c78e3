package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type SummaryService struct {
	logs *FoodLogService
}

func NewSummaryService(logs *FoodLogService) *SummaryService {
	return &SummaryService{logs: logs}
}

// EntryView is one log entry plus its per-nutrient statuses against the
// day's targets.
type EntryView struct {
	models.FoodLogEntry
	Statuses map[string]utils.NutrientStatus `json:"statuses,omitempty"`
}

// DaySummary is the full payload the food-log view renders: entries grouped
// by meal, daily totals, the derived targets, and a tier per nutrient.
type DaySummary struct {
	Date             string                          `json:"date"`
	Meals            map[string][]EntryView          `json:"meals"`
	Totals           map[string]float64              `json:"totals"`
	Targets          map[string]float64              `json:"targets"`
	Units            map[string]string               `json:"units"`
	Statuses         map[string]utils.NutrientStatus `json:"statuses"`
	WeightGoalStatus utils.WeightGoalStatus          `json:"weight_goal_status,omitempty"`
}

// Targets returns the user's derived daily values. Pure: recomputed from the
// profile on every call, never persisted.
func (s *SummaryService) Targets(user *models.User) models.NutrientVector {
	return utils.CalculateDailyValues(user)
}

// Summarize aggregates the day's log and classifies every nutrient against
// the derived targets. withEntryStatuses additionally tiers each entry's own
// vector, for per-item coloring.
func (s *SummaryService) Summarize(user *models.User, date time.Time, withEntryStatuses bool) (*DaySummary, error) {
	entries, err := s.logs.ListDay(user.ID, date)
	if err != nil {
		return nil, err
	}

	totals := utils.SumNutrients(entries)
	rdv := utils.CalculateDailyValues(user)
	goal := utils.DeriveWeightGoalStatus(user)

	units := make(map[string]string, len(models.NutrientFields))
	for _, f := range models.NutrientFields {
		units[f.Name] = f.Unit
	}

	out := &DaySummary{
		Date:             dayStartLocal(date).Format("2006-01-02"),
		Meals:            make(map[string][]EntryView, 4),
		Totals:           totals.Values(),
		Targets:          rdv.Values(),
		Units:            units,
		Statuses:         utils.ClassifyTotals(totals, rdv, goal),
		WeightGoalStatus: goal,
	}

	for slot, slotEntries := range utils.GroupByMeal(entries) {
		views := make([]EntryView, 0, len(slotEntries))
		for _, e := range slotEntries {
			view := EntryView{FoodLogEntry: e}
			if withEntryStatuses {
				view.Statuses = utils.ClassifyTotals(e.Nutrition, rdv, utils.WeightGoalNone)
			}
			views = append(views, view)
		}
		out.Meals[slot] = views
	}

	return out, nil
}

// RefreshDailyProgress recomputes the day's totals after a log mutation,
// rewrites the persisted snapshot, raises exceeded-limit alerts, and pushes
// the fresh summary to connected clients. Called from the food-log service;
// failures here never block the mutation that triggered it.
func RefreshDailyProgress(userID uint, date time.Time) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	var entries []models.FoodLogEntry
	if err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return
	}
	totals := utils.SumNutrients(entries)

	hydration, exercise, _ := GetDailyActivityByDate(userID, start)

	dp := models.DailyProgress{
		UserID:       userID,
		Date:         start,
		Calories:     totals.Calories,
		Protein:      totals.Protein,
		Carbs:        totals.Carbs,
		Fat:          totals.Fat,
		Fiber:        totals.Fiber,
		Sugar:        totals.Sugar,
		SaturatedFat: totals.SaturatedFat,
		Sodium:       totals.Sodium,
		Cholesterol:  totals.Cholesterol,
		Hydration:    hydration,
		Exercise:     exercise,
	}
	config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(dp).
		FirstOrCreate(&dp)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return
	}
	rdv := utils.CalculateDailyValues(&user)

	for _, f := range models.NutrientFields {
		if !utils.IsUpperBound(f.Name) {
			continue
		}
		if utils.ClassifyUpperBound(totals.Get(f.Name), rdv.Get(f.Name)) != utils.StatusLow {
			continue
		}
		if alertedToday(userID, f.Name, start, end) {
			continue
		}
		EmitAlert(userID, "warning", f.Name, fmt.Sprintf(
			"Daily %s limit exceeded: %.0f %s of %.0f %s",
			f.Name, totals.Get(f.Name), f.Unit, rdv.Get(f.Name), f.Unit,
		))
	}

	BroadcastSummaryUpdate(userID, start.Format("2006-01-02"), totals.Values())
}

// alertedToday suppresses duplicate limit alerts for the same nutrient and day.
func alertedToday(userID uint, nutrient string, start, end time.Time) bool {
	var existing models.Alert
	err := config.DB.
		Where("user_id = ? AND nutrient = ? AND created_at >= ? AND created_at < ?",
			userID, nutrient, start, end).
		First(&existing).Error
	return !errors.Is(err, gorm.ErrRecordNotFound)
}
