package services

import (
	"context"
	"errors"
	"math"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ---------- Summary ----------

type NutrAvg struct {
	AvgConsumed float64 `json:"avg_consumed"`
	AvgTarget   float64 `json:"avg_target,omitempty"`
	AvgPercent  float64 `json:"avg_percent,omitempty"`
	Unit        string  `json:"unit,omitempty"`
}

type AnalyticsSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Macros map[string]NutrAvg `json:"macros"` // calories, protein, carbs, fat
	Micros map[string]NutrAvg `json:"micros"` // fiber, sugar, saturated fat, sodium, cholesterol
	Other  map[string]NutrAvg `json:"other"`  // hydration, exercise

	Adherence struct {
		ScorePct      float64 `json:"score_pct"`
		DaysOnTarget  int     `json:"days_on_target"`
		DaysOffTarget int     `json:"days_off_target"`
	} `json:"adherence"`

	Metadata struct {
		DaysCounted        int  `json:"days_counted"`
		IncludeMissingDays bool `json:"include_missing_days"`
	} `json:"metadata"`
}

// Summary averages persisted daily snapshots over [from,to] against the
// user's derived targets. includeMissing counts unlogged days as zeros.
func (s *AnalyticsService) Summary(
	ctx context.Context, user *models.User, from, to time.Time, includeMissing bool,
) (*AnalyticsSummary, error) {

	var rows []models.DailyProgress
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", user.ID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	rdv := utils.CalculateDailyValues(user)
	goal := utils.DeriveWeightGoalStatus(user)

	idx := map[string]models.DailyProgress{}
	for _, r := range rows {
		idx[r.Date.Format("2006-01-02")] = r
	}

	var dates []time.Time
	if includeMissing {
		for d := dayStart(from); !d.After(to); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
	} else {
		for _, r := range rows {
			dates = append(dates, dayStart(r.Date))
		}
	}

	type acc struct{ sum, psum float64 }
	track := func(dp models.DailyProgress) map[string]float64 {
		return map[string]float64{
			"calories":      dp.Calories,
			"protein":       dp.Protein,
			"carbs":         dp.Carbs,
			"fat":           dp.Fat,
			"fiber":         dp.Fiber,
			"sugar":         dp.Sugar,
			"saturated_fat": dp.SaturatedFat,
			"sodium":        dp.Sodium,
			"cholesterol":   dp.Cholesterol,
			"hydration":     dp.Hydration,
			"exercise":      dp.Exercise,
		}
	}
	m := map[string]*acc{}
	for k := range track(models.DailyProgress{}) {
		m[k] = &acc{}
	}

	onTarget, offTarget := 0, 0
	for _, d := range dates {
		dp := idx[d.Format("2006-01-02")] // zero value when missing

		for k, v := range track(dp) {
			m[k].sum += v
			target := rdv.Get(k)
			if target > 0 {
				m[k].psum += (v / target) * 100.0
			}
		}

		switch utils.ClassifyCalories(dp.Calories, rdv.Calories, goal) {
		case utils.StatusOnTarget, utils.StatusPartial:
			onTarget++
		default:
			offTarget++
		}
	}

	out := &AnalyticsSummary{}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")
	out.Metadata.DaysCounted = len(dates)
	out.Metadata.IncludeMissingDays = includeMissing

	n := len(dates)
	avgOf := func(k, unit string) NutrAvg {
		return NutrAvg{
			AvgConsumed: avg(m[k].sum, n),
			AvgTarget:   round2(rdv.Get(k)),
			AvgPercent:  avg(m[k].psum, n),
			Unit:        unit,
		}
	}

	out.Macros = map[string]NutrAvg{
		"calories": avgOf("calories", "kcal"),
		"protein":  avgOf("protein", "g"),
		"carbs":    avgOf("carbs", "g"),
		"fat":      avgOf("fat", "g"),
	}
	out.Micros = map[string]NutrAvg{
		"fiber":         avgOf("fiber", "g"),
		"sugar":         avgOf("sugar", "g"),
		"saturated_fat": avgOf("saturated_fat", "g"),
		"sodium":        avgOf("sodium", "mg"),
		"cholesterol":   avgOf("cholesterol", "mg"),
	}
	out.Other = map[string]NutrAvg{
		"hydration": {AvgConsumed: avg(m["hydration"].sum, n), Unit: "glasses"},
		"exercise":  {AvgConsumed: avg(m["exercise"].sum, n), Unit: "minutes"},
	}

	// Beta(1,1)-smoothed share of days on (or near) the calorie target, so a
	// single logged day doesn't read as 0% or 100%.
	out.Adherence.DaysOnTarget = onTarget
	out.Adherence.DaysOffTarget = offTarget
	out.Adherence.ScorePct = round2((float64(onTarget) + 1) / (float64(onTarget+offTarget) + 2) * 100.0)

	return out, nil
}

// ---------- Weekly Overview ----------

type WeeklyOverviewResponse struct {
	WeekStart string `json:"week_start"`
	Mode      string `json:"mode"` // chart|detailed
	Days      any    `json:"days"`
}

type DayChart struct {
	Date        string             `json:"date"`
	Percentages map[string]float64 `json:"percentages"`
}

type Metric struct {
	Actual  float64               `json:"actual"`
	Target  float64               `json:"target"`
	Percent float64               `json:"percent"`
	Status  utils.NutrientStatus  `json:"status"`
}

type DayDetailed struct {
	Date    string            `json:"date"`
	Metrics map[string]Metric `json:"metrics"`
}

var weeklyNutrients = []string{
	"calories", "protein", "carbs", "fat", "fiber", "sugar",
	"saturated_fat", "sodium", "cholesterol",
}

func (s *AnalyticsService) WeeklyOverview(
	ctx context.Context, user *models.User, weekStart time.Time, mode string,
) (*WeeklyOverviewResponse, error) {

	if mode != "chart" && mode != "detailed" {
		return nil, errors.New("mode must be 'chart' or 'detailed'")
	}

	from := dayStart(weekStart)
	to := from.AddDate(0, 0, 6)

	var rows []models.DailyProgress
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", user.ID, from, dayEnd(to)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	idx := map[string]models.DailyProgress{}
	for _, r := range rows {
		idx[r.Date.Format("2006-01-02")] = r
	}

	rdv := utils.CalculateDailyValues(user)
	goal := utils.DeriveWeightGoalStatus(user)

	out := &WeeklyOverviewResponse{
		WeekStart: from.Format("2006-01-02"),
		Mode:      mode,
	}

	dayValue := func(dp models.DailyProgress, name string) float64 {
		switch name {
		case "calories":
			return dp.Calories
		case "protein":
			return dp.Protein
		case "carbs":
			return dp.Carbs
		case "fat":
			return dp.Fat
		case "fiber":
			return dp.Fiber
		case "sugar":
			return dp.Sugar
		case "saturated_fat":
			return dp.SaturatedFat
		case "sodium":
			return dp.Sodium
		case "cholesterol":
			return dp.Cholesterol
		}
		return 0
	}

	if mode == "chart" {
		var days []DayChart
		for i := 0; i < 7; i++ {
			d := from.AddDate(0, 0, i)
			dp := idx[d.Format("2006-01-02")]
			pcts := make(map[string]float64, len(weeklyNutrients))
			for _, name := range weeklyNutrients {
				pcts[name] = pct(dayValue(dp, name), rdv.Get(name))
			}
			days = append(days, DayChart{Date: d.Format("2006-01-02"), Percentages: pcts})
		}
		out.Days = days
		return out, nil
	}

	var days []DayDetailed
	for i := 0; i < 7; i++ {
		d := from.AddDate(0, 0, i)
		dp := idx[d.Format("2006-01-02")]
		metrics := make(map[string]Metric, len(weeklyNutrients))
		for _, name := range weeklyNutrients {
			actual := dayValue(dp, name)
			target := rdv.Get(name)
			metrics[name] = Metric{
				Actual:  round2(actual),
				Target:  round2(target),
				Percent: pct(actual, target),
				Status:  utils.ClassifyNutrient(name, actual, target, goal),
			}
		}
		days = append(days, DayDetailed{Date: d.Format("2006-01-02"), Metrics: metrics})
	}
	out.Days = days
	return out, nil
}

// ---------- internals ----------

func pct(actual, target float64) float64 {
	if target <= 0 {
		if actual <= 0 {
			return 0
		}
		return 100
	}
	return round2((actual / target) * 100.0)
}

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
