package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// queryDate parses the ?date= parameter, defaulting to today.
func queryDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func newFoodLogService() *services.FoodLogService {
	return services.NewFoodLogService(services.NewPersonalFoodService())
}

func ListLogEntries(c *gin.Context) {
	userID := c.GetUint("userID")
	date, ok := queryDate(c)
	if !ok {
		return
	}

	entries, err := newFoodLogService().ListDay(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func AddLogEntry(c *gin.Context) {
	userID := c.GetUint("userID")
	date, ok := queryDate(c)
	if !ok {
		return
	}

	var input services.LogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := newFoodLogService().AddEntry(userID, date, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func UpdateLogEntry(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.UpdateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := newFoodLogService().UpdateEntry(userID, id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func DeleteLogEntry(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := newFoodLogService().DeleteEntry(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}
