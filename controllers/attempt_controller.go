// Package controllers controllers/attempt_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-meet-scoring/logger"
	"go-meet-scoring/models"
	"go-meet-scoring/services"
	"go-meet-scoring/websocket"
)

// AttemptController struct with service dependency injection
type AttemptController struct {
	Attempts services.AttemptServiceInterface
	Results  services.ResultServiceInterface
}

// NewAttemptController creates an instance of AttemptController
func NewAttemptController(attempts services.AttemptServiceInterface, results services.ResultServiceInterface) *AttemptController {
	logger.Debug.Println("NewAttemptController: Initializing AttemptController")
	return &AttemptController{Attempts: attempts, Results: results}
}

// attemptWeightRequest declares an opening or next weight for a slot.
type attemptWeightRequest struct {
	RegistrationID string  `json:"registrationId" binding:"required"`
	LiftType       string  `json:"liftType" binding:"required"`
	AttemptNumber  int     `json:"attemptNumber" binding:"required"`
	Weight         float64 `json:"weight" binding:"required"`
}

// RecordWeight handles POST /api/attempts/weight.
func (ac *AttemptController) RecordWeight(c *gin.Context) {
	var req attemptWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lift, err := models.ParseLiftType(req.LiftType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := ac.Attempts.RecordAttemptWeight(req.RegistrationID, lift, req.AttemptNumber, req.Weight)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempt)
	go ac.broadcastQueue(req.RegistrationID)
}

// judgeRequest carries the judges' verdict for an attempt.
type judgeRequest struct {
	Status string `json:"status" binding:"required"`
}

// Judge handles POST /api/attempts/:id/judge. A decision re-scores the
// lifter and re-ranks the whole contest before anyone else steps on
// the platform.
func (ac *AttemptController) Judge(c *gin.Context) {
	attemptID := c.Param("id")

	var req judgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseAttemptStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := ac.Attempts.JudgeAttempt(attemptID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	contestID, err := ac.Attempts.ContestIDForRegistration(attempt.RegistrationID)
	if err != nil {
		respondError(c, err)
		return
	}

	start := time.Now()
	if _, err := ac.Results.RecalculateAll(contestID); err != nil {
		logger.Error.Printf("Judge: re-rank failed for contest=%s: %v", contestID, err)
		respondError(c, err)
		return
	}
	websocket.PublishDecisionCount(contestID)
	websocket.PublishRecalcDuration(float64(time.Since(start).Milliseconds()), contestID)

	c.JSON(http.StatusOK, attempt)

	websocket.BroadcastMessage(contestID, map[string]interface{}{
		"action":    "decision",
		"attemptId": attempt.ID,
		"status":    attempt.Status,
	})
	websocket.BroadcastMessage(contestID, map[string]interface{}{"action": "rankingsUpdated"})
	go ac.broadcastQueue(attempt.RegistrationID)
}

// GetQueue handles GET /api/contests/:contestId/queue.
func (ac *AttemptController) GetQueue(c *gin.Context) {
	contestID := c.Param("contestId")
	queue, err := ac.Attempts.NextInQueue(contestID)
	if err != nil {
		respondError(c, err)
		return
	}
	websocket.PublishQueueDepth(len(queue), contestID)
	c.JSON(http.StatusOK, gin.H{"queue": queue})
}

// GetCurrentAttempt handles GET /api/contests/:contestId/current-attempt.
func (ac *AttemptController) GetCurrentAttempt(c *gin.Context) {
	contestID := c.Param("contestId")
	attempt, err := ac.Attempts.CurrentAttempt(contestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"currentAttempt": attempt})
}

// setCurrentRequest names the attempt going on deck.
type setCurrentRequest struct {
	AttemptID string `json:"attemptId" binding:"required"`
}

// SetCurrentAttempt handles PUT /api/contests/:contestId/current-attempt.
func (ac *AttemptController) SetCurrentAttempt(c *gin.Context) {
	contestID := c.Param("contestId")

	var req setCurrentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ac.Attempts.SetCurrentAttempt(contestID, req.AttemptID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
	websocket.BroadcastMessage(contestID, map[string]interface{}{
		"action":    "currentAttemptChanged",
		"attemptId": req.AttemptID,
	})
}

// ClearCurrentAttempt handles DELETE /api/contests/:contestId/current-attempt.
func (ac *AttemptController) ClearCurrentAttempt(c *gin.Context) {
	contestID := c.Param("contestId")
	if err := ac.Attempts.ClearCurrentAttempt(contestID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListByRegistration handles GET /api/registrations/:id/attempts.
func (ac *AttemptController) ListByRegistration(c *gin.Context) {
	attempts, err := ac.Attempts.AttemptsByRegistration(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

// ListByContest handles GET /api/contests/:contestId/attempts.
func (ac *AttemptController) ListByContest(c *gin.Context) {
	attempts, err := ac.Attempts.ContestAttempts(c.Param("contestId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

// Delete handles DELETE /api/attempts/:id.
func (ac *AttemptController) Delete(c *gin.Context) {
	if err := ac.Attempts.DeleteAttempt(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// broadcastQueue pushes the refreshed queue for the registration's
// contest to its scoreboard clients.
func (ac *AttemptController) broadcastQueue(registrationID string) {
	contestID, err := ac.Attempts.ContestIDForRegistration(registrationID)
	if err != nil {
		logger.Warn.Printf("broadcastQueue: could not resolve contest for registration=%s: %v", registrationID, err)
		return
	}
	websocket.BroadcastMessage(contestID, map[string]interface{}{"action": "queueChanged"})
}
