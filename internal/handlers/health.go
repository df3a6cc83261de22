package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rogue-drones/workflow/db"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "API is running",
	})
}

func HealthCheckDB(c *gin.Context) {
	if err := db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "unhealthy",
			"message": "Database error: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Database connection is working",
	})
}
