package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GetDaySummary returns the full day view the dashboard renders: entries by
// meal, totals, derived targets, and a status tier per nutrient.
// ?include_items=true adds per-entry statuses.
func GetDaySummary(c *gin.Context) {
	email := c.GetString("email")
	date, ok := queryDate(c)
	if !ok {
		return
	}

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewSummaryService(newFoodLogService())
	summary, err := svc.Summarize(user, date, c.Query("include_items") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTargets returns the user's derived daily values, recomputed from the
// current profile.
func GetTargets(c *gin.Context) {
	email := c.GetString("email")

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewSummaryService(newFoodLogService())
	targets := svc.Targets(user)

	c.JSON(http.StatusOK, gin.H{"targets": targets.Values()})
}
