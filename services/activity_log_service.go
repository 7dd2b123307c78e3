package services

import (
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// UpsertDailyActivity records hydration and exercise for today, keyed by
// (user, local midnight).
func UpsertDailyActivity(userID uint, hydration, exercise float64) error {
	start := dayStartLocal(time.Now())

	entry := models.DailyActivityLog{
		UserID:    userID,
		Date:      start,
		Hydration: hydration,
		Exercise:  exercise,
	}

	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(entry).
		FirstOrCreate(&entry).Error
	if err != nil {
		return err
	}
	RefreshDailyProgress(userID, start)
	return nil
}

func GetDailyActivityByDate(userID uint, date time.Time) (hydration, exercise float64, err error) {
	start := dayStartLocal(date)

	var entry models.DailyActivityLog
	err = config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	return entry.Hydration, entry.Exercise, nil
}
