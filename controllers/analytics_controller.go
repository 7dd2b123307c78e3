package controllers

import (
	"net/http"
	"time"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// AnalyticsSummary averages daily snapshots over ?from=..&to=.. (default: the
// trailing 7 days). ?include_missing_days=true counts unlogged days as zeros.
func AnalyticsSummary(c *gin.Context) {
	email := c.GetString("email")

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	to := time.Now()
	from := to.AddDate(0, 0, -6)
	if raw := c.Query("from"); raw != "" {
		if from, err = time.ParseInLocation("2006-01-02", raw, time.Local); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = time.ParseInLocation("2006-01-02", raw, time.Local); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not precede from"})
		return
	}

	svc := services.NewAnalyticsService(config.DB)
	summary, err := svc.Summary(c.Request.Context(), user, from, to, c.Query("include_missing_days") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// WeeklyOverview renders seven days from ?week_start= (default: last Monday)
// in chart or detailed mode.
func WeeklyOverview(c *gin.Context) {
	email := c.GetString("email")

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	weekStart := mondayOf(time.Now())
	if raw := c.Query("week_start"); raw != "" {
		if weekStart, err = time.ParseInLocation("2006-01-02", raw, time.Local); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be YYYY-MM-DD"})
			return
		}
	}

	mode := c.DefaultQuery("mode", "chart")

	svc := services.NewAnalyticsService(config.DB)
	overview, err := svc.WeeklyOverview(c.Request.Context(), user, weekStart, mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, overview)
}

func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
