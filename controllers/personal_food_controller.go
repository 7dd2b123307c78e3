package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func ListPersonalFoods(c *gin.Context) {
	userID := c.GetUint("userID")

	svc := services.NewPersonalFoodService()
	foods, err := svc.List(userID, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

func GetPersonalFood(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := services.NewPersonalFoodService()
	food, err := svc.Get(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, food)
}

func CreatePersonalFood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.PersonalFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewPersonalFoodService()
	food, err := svc.Create(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, food)
}

func UpdatePersonalFood(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.PersonalFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewPersonalFoodService()
	food, err := svc.Update(userID, id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, food)
}

func DeletePersonalFood(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc := services.NewPersonalFoodService()
	if err := svc.Delete(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}
