package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "Backend active",
		"message":   "Impact Log is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
