// Package controllers controllers/errors.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-meet-scoring/logger"
	"go-meet-scoring/models"
)

// respondError maps the core's error taxonomy onto HTTP statuses:
// missing records are 404, state-machine and precondition violations
// are 409, malformed input is 400, everything else is 500.
func respondError(c *gin.Context, err error) {
	var transitionErr *models.InvalidTransitionError
	var validationErr *models.ValidationError

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &transitionErr), errors.Is(err, models.ErrContestNotInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error.Printf("respondError: unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
