package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"micat-content-api/config"
	"micat-content-api/models"
	"micat-content-api/services"
	"micat-content-api/utils"
)

// GetSubmissions returns the role-scoped, filtered submission list. Officers
// only ever see their own MAC's submissions; reviewers and admins see all.
func GetSubmissions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	statusFilter := strings.TrimSpace(c.Query("status"))
	if statusFilter == "" {
		statusFilter = services.StatusFilterAll
	}
	if statusFilter != services.StatusFilterAll && !models.SubmissionStatus(statusFilter).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}
	query := c.Query("q")

	snap := config.Store.Snapshot()
	filtered := services.FilterSubmissions(snap.Submissions, user, statusFilter, query)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": filtered,
		"total":       len(filtered),
	})
}

// GetSubmission returns one submission with its comment thread. Officers may
// only fetch submissions owned by their MAC.
func GetSubmission(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	id := c.Param("id")
	snap := config.Store.Snapshot()
	for _, sub := range snap.Submissions {
		if sub.ID != id {
			continue
		}
		if user.Role == models.RoleMACOfficer && (user.MACID == nil || sub.MACID != *user.MACID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Submission belongs to another MAC"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "submission": sub})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
}

type CreateSubmissionRequest struct {
	Title        string             `json:"title" binding:"required"`
	ContentType  models.ContentType `json:"content_type" binding:"required"`
	Description  string             `json:"description"`
	Tags         []string           `json:"tags"`
	Date         string             `json:"date"`
	FileName     string             `json:"file_name" binding:"required"`
	FileSize     string             `json:"file_size"`
	Confidential bool               `json:"confidential"`
}

// CreateSubmission is the officer upload action. The new submission enters
// the queue as pending and is owned by the officer's MAC.
func CreateSubmission(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.ContentType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content type"})
		return
	}

	sub, err := services.Submit(config.Store, user, services.SubmissionInput{
		Title:        utils.SanitizeInput(req.Title),
		ContentType:  req.ContentType,
		Description:  utils.SanitizeInput(req.Description),
		Tags:         utils.NormalizeTags(req.Tags),
		ContentDate:  req.Date,
		FileName:     req.FileName,
		FileSize:     req.FileSize,
		Confidential: req.Confidential,
	})
	if err != nil {
		c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Your content has been submitted for MICAT review.",
		"submission": sub,
	})
}
