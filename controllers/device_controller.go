package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type DeviceInput struct {
	Platform string `json:"platform" binding:"required"` // ios|android
	Token    string `json:"token" binding:"required"`
}

// RegisterDevice binds a push token to the authenticated user. Returns a
// handler so the shared push service can be injected at route setup.
func RegisterDevice(ps *services.PushService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ps == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push notifications not configured"})
			return
		}

		userID := c.GetUint("userID")

		var input DeviceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		device, err := ps.RegisterDevice(userID, input.Platform, input.Token)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, device)
	}
}
