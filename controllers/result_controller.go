// Package controllers controllers/result_controller.go
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

// ResultController struct with service dependency injection
type ResultController struct {
	Results services.ResultServiceInterface
}

// NewResultController creates an instance of ResultController
func NewResultController(results services.ResultServiceInterface) *ResultController {
	logger.Debug.Println("NewResultController: Initializing ResultController")
	return &ResultController{Results: results}
}

// Recalculate handles POST /api/contests/:contestId/recalculate.
func (rc *ResultController) Recalculate(c *gin.Context) {
	contestID := c.Param("contestId")

	start := time.Now()
	results, err := rc.Results.RecalculateAll(contestID)
	if err != nil {
		respondError(c, err)
		return
	}
	websocket.PublishRecalcDuration(float64(time.Since(start).Milliseconds()), contestID)

	c.JSON(http.StatusOK, gin.H{"results": results})
	websocket.BroadcastMessage(contestID, map[string]interface{}{"action": "rankingsUpdated"})
}

// GetRanking handles GET /api/contests/:contestId/rankings/:type.
func (rc *ResultController) GetRanking(c *gin.Context) {
	contestID := c.Param("contestId")

	ranking, err := models.ParseRankingType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := rc.Results.ExportRanking(contestID, ranking)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rankingType": ranking, "results": results})
}

// GetResult handles GET /api/registrations/:id/result.
func (rc *ResultController) GetResult(c *gin.Context) {
	result, err := rc.Results.ResultByRegistration(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// disqualifyRequest flags or unflags a lifter.
type disqualifyRequest struct {
	Disqualified bool   `json:"disqualified"`
	Reason       string `json:"reason"`
}

// SetDisqualification handles PUT /api/registrations/:id/disqualification.
func (rc *ResultController) SetDisqualification(c *gin.Context) {
	registrationID := c.Param("id")

	var req disqualifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := rc.Results.SetDisqualification(registrationID, req.Disqualified, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
	websocket.BroadcastMessage(result.ContestID, map[string]interface{}{"action": "rankingsUpdated"})
}
