package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"micat-content-api/config"
	"micat-content-api/models"
	"micat-content-api/services"
)

// GetDashboardStats returns the per-status counters over the caller's
// role-visible submission set. Admins additionally get the system overview
// block their dashboard shows.
func GetDashboardStats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "authentication context missing",
		})
		return
	}

	snap := config.Store.Snapshot()
	stats := services.ComputeStats(snap.Submissions, user)

	payload := gin.H{
		"stats":        stats,
		"current_date": time.Now().Format("2006-01-02"),
	}

	if user.Role == models.RoleAdmin {
		activeUsers := 0
		for _, u := range snap.Users {
			if u.Active {
				activeUsers++
			}
		}
		payload["system"] = gin.H{
			"total_users":       len(snap.Users),
			"active_users":      activeUsers,
			"total_macs":        len(snap.MACs),
			"total_submissions": len(snap.Submissions),
		}
	}

	c.JSON(http.StatusOK, payload)
}
