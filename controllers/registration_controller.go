// Package controllers controllers/registration_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-meet-scoring/logger"
	"go-meet-scoring/models"
	"go-meet-scoring/services"
)

// RegistrationController struct with service dependency injection
type RegistrationController struct {
	Registrations services.RegistrationServiceInterface
}

// NewRegistrationController creates an instance of RegistrationController
func NewRegistrationController(regs services.RegistrationServiceInterface) *RegistrationController {
	logger.Debug.Println("NewRegistrationController: Initializing RegistrationController")
	return &RegistrationController{Registrations: regs}
}

// CreateCompetitor handles POST /api/competitors.
func (rc *RegistrationController) CreateCompetitor(c *gin.Context) {
	var competitor models.Competitor
	if err := c.ShouldBindJSON(&competitor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := rc.Registrations.AddCompetitor(competitor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Register handles POST /api/registrations. The request carries the
// contest date so the age coefficient can be anchored to meet day.
func (rc *RegistrationController) Register(c *gin.Context) {
	var req services.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ContestID == "" || req.CompetitorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contestId and competitorId are required"})
		return
	}

	reg, err := rc.Registrations.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// ListByContest handles GET /api/contests/:contestId/registrations.
func (rc *RegistrationController) ListByContest(c *gin.Context) {
	regs, err := rc.Registrations.RegistrationsByContest(c.Param("contestId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": regs})
}
