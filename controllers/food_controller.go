package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func newFoodService() (*services.FoodService, error) {
	vision, err := services.NewVisionService()
	if err != nil {
		return nil, err
	}
	return services.NewFoodService(services.NewLookupService(), vision), nil
}

// SearchFoods proxies a free-text query to the food database.
func SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	svc := services.NewLookupService()
	matches, err := svc.Search(query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": matches})
}

type RecognizeInput struct {
	Image string `json:"image" binding:"required"` // base64 data URI
}

// RecognizeFood labels a food photo and returns database matches for the top
// label.
func RecognizeFood(c *gin.Context) {
	var input RecognizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := newFoodService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	matches, err := svc.Recognize(input.Image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": matches})
}

type AnalyzeInput struct {
	FoodID     string  `json:"food_id" binding:"required"`
	MeasureURI string  `json:"measure_uri" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required"`
}

// AnalyzeFood resolves a (food, measure, quantity) triple to a full nutrient
// breakdown.
func AnalyzeFood(c *gin.Context) {
	var input AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewLookupService()
	analysis, err := svc.Analyze(input.FoodID, input.MeasureURI, input.Quantity)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}
