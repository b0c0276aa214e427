package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"micat-content-api/config"
	"micat-content-api/models"
	"micat-content-api/services"
	"micat-content-api/store"
)

type DecisionRequest struct {
	Comment string `json:"comment"`
}

type decisionFunc func(*store.Store, models.User, string, string) (models.Submission, error)

// StartReview moves a pending submission into under_review so the queue
// reflects what a reviewer is actively working on.
func StartReview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	sub, err := services.StartReview(config.Store, user, c.Param("id"))
	if err != nil {
		c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Submission is now under review",
		"submission": sub,
	})
}

// ApproveSubmission approves a reviewable submission.
func ApproveSubmission(c *gin.Context) {
	decide(c, services.Approve, "The content has been approved and published.")
}

// DenySubmission denies a reviewable submission with feedback.
func DenySubmission(c *gin.Context) {
	decide(c, services.Deny, "The content has been denied with feedback.")
}

// ReturnSubmission sends a reviewable submission back to its MAC for edits.
func ReturnSubmission(c *gin.Context) {
	decide(c, services.ReturnForEdits, "The content has been sent back with feedback.")
}

func decide(c *gin.Context, action decisionFunc, message string) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sub, err := action(config.Store, user, c.Param("id"), req.Comment)
	if err != nil {
		c.JSON(lifecycleStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"submission": sub,
	})
}
