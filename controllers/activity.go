package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"micat-content-api/config"
)

// GetActivityLogs returns the audit trail, newest first (reviewer/admin).
func GetActivityLogs(c *gin.Context) {
	snap := config.Store.Snapshot()
	logs := snap.ActivityLogs

	if v, err := strconv.Atoi(strings.TrimSpace(c.Query("limit"))); err == nil && v > 0 && v < len(logs) {
		logs = logs[:v]
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"logs":    logs,
		"total":   len(snap.ActivityLogs),
	})
}
