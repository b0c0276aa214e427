package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"micat-content-api/config"
)

// GetMACs returns the static organization reference list.
func GetMACs(c *gin.Context) {
	snap := config.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"macs":    snap.MACs,
		"total":   len(snap.MACs),
	})
}
