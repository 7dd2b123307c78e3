package services

import (
	"fmt"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

// InitAlertDeps wires the alert bus once at startup. Push may be nil when SNS
// is not configured.
func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists a nutrient alert and fans it out over websocket and
// push. Safe to call anywhere, including before initialization.
func EmitAlert(userID uint, typ, nutrient, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Nutrient: nutrient, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Nutrition Alert", message, map[string]string{
			"type": typ, "nutrient": nutrient, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// BroadcastSummaryUpdate tells connected clients a day's totals changed so
// they can refetch the summary.
func BroadcastSummaryUpdate(userID uint, date string, totals map[string]float64) {
	if _alert.rt == nil {
		return
	}
	_alert.rt.Broadcast(userID, map[string]any{
		"kind":   "summary.updated",
		"date":   date,
		"totals": totals,
	})
}
