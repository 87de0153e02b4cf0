// Package controllers controllers/state_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-meet-scoring/logger"
	"go-meet-scoring/models"
	"go-meet-scoring/services"
	"go-meet-scoring/websocket"
)

// StateController struct with service dependency injection
type StateController struct {
	Attempts services.AttemptServiceInterface
}

// NewStateController creates an instance of StateController
func NewStateController(attempts services.AttemptServiceInterface) *StateController {
	logger.Debug.Println("NewStateController: Initializing StateController")
	return &StateController{Attempts: attempts}
}

// GetState handles GET /api/contests/:contestId/state.
func (sc *StateController) GetState(c *gin.Context) {
	state, err := sc.Attempts.ContestState(c.Param("contestId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// statusRequest names the requested contest status.
type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TransitionStatus handles PUT /api/contests/:contestId/status.
func (sc *StateController) TransitionStatus(c *gin.Context) {
	contestID := c.Param("contestId")

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseContestStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := sc.Attempts.TransitionStatus(contestID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
	websocket.BroadcastMessage(contestID, map[string]interface{}{
		"action": "statusChanged",
		"status": state.Status,
	})
}

// liftRequest names the lift and round the queue should draw from.
type liftRequest struct {
	LiftType string `json:"liftType" binding:"required"`
	Round    int    `json:"round" binding:"required"`
}

// SetCurrentLift handles PUT /api/contests/:contestId/lift.
func (sc *StateController) SetCurrentLift(c *gin.Context) {
	contestID := c.Param("contestId")

	var req liftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lift, err := models.ParseLiftType(req.LiftType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := sc.Attempts.SetCurrentLift(contestID, lift, req.Round)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
	websocket.BroadcastMessage(contestID, map[string]interface{}{
		"action": "liftChanged",
		"lift":   lift,
		"round":  req.Round,
	})
}
