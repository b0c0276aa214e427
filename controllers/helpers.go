package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"micat-content-api/config"
	"micat-content-api/models"
	"micat-content-api/services"
)

// currentUser resolves the acting user set by the auth middleware.
func currentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return models.User{}, false
	}
	id, ok := v.(string)
	if !ok {
		return models.User{}, false
	}
	user, err := services.FindUserByID(config.Store, id)
	if err != nil {
		return models.User{}, false
	}
	return user, true
}

// lifecycleStatus maps service errors onto HTTP status codes.
func lifecycleStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSubmissionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, services.ErrNoActor):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNoAffiliation):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
