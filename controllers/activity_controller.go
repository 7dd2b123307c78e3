package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ActivityInput struct {
	Hydration float64 `json:"hydration"` // glasses of water
	Exercise  float64 `json:"exercise"`  // minutes
}

func UpsertDailyActivity(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Hydration < 0 || input.Exercise < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hydration and exercise must be non-negative"})
		return
	}

	if err := services.UpsertDailyActivity(userID, input.Hydration, input.Exercise); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "activity recorded"})
}

func GetDailyActivity(c *gin.Context) {
	userID := c.GetUint("userID")
	date, ok := queryDate(c)
	if !ok {
		return
	}

	hydration, exercise, err := services.GetDailyActivityByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hydration": hydration, "exercise": exercise})
}
