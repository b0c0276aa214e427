package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"micat-content-api/config"
	"micat-content-api/models"
	"micat-content-api/services"
	"micat-content-api/utils"
)

// GetUsers lists all accounts (admin only).
func GetUsers(c *gin.Context) {
	snap := config.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   snap.Users,
		"total":   len(snap.Users),
	})
}

type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Role     models.UserRole `json:"role" binding:"required"`
	MACID    string          `json:"mac_id"`
	Password string          `json:"password"`
}

// CreateUser creates an account. Officer accounts must name a MAC; the MAC
// display name is resolved from reference data.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}
	if req.Password != "" {
		if ok, msg := utils.ValidatePassword(req.Password); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
	}

	user, err := services.CreateUser(config.Store, services.UserInput{
		Name:     utils.SanitizeInput(req.Name),
		Email:    req.Email,
		Role:     req.Role,
		MACID:    req.MACID,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		case errors.Is(err, services.ErrMACRequired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "MAC officer accounts require a MAC"})
		case errors.Is(err, services.ErrUnknownMAC):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown MAC"})
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	})
}

// ToggleUserStatus flips an account's active flag. Submissions already
// attributed to the user are untouched.
func ToggleUserStatus(c *gin.Context) {
	user, err := services.ToggleUserActive(config.Store, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User status updated",
		"user":    user,
	})
}
