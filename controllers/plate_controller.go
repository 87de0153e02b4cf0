// Package controllers controllers/plate_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-meet-scoring/logger"
	"go-meet-scoring/services"
)

// PlateController struct with service dependency injection
type PlateController struct {
	Plates services.PlateServiceInterface
}

// NewPlateController creates an instance of PlateController
func NewPlateController(plates services.PlateServiceInterface) *PlateController {
	logger.Debug.Println("NewPlateController: Initializing PlateController")
	return &PlateController{Plates: plates}
}

// CalculateLoading handles GET /api/contests/:contestId/plates/loading.
// Query params: target (kg, required), gender (optional, defaults to
// the men's bar).
func (pc *PlateController) CalculateLoading(c *gin.Context) {
	contestID := c.Param("contestId")

	target, err := strconv.ParseFloat(c.Query("target"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target must be a number"})
		return
	}

	calc, err := pc.Plates.CalculateLoading(contestID, target, c.Query("gender"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, calc)
}

// plateSetRequest describes one plate denomination.
type plateSetRequest struct {
	PlateWeight float64 `json:"plateWeight" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	Color       string  `json:"color"`
}

// AddPlateSet handles POST /api/contests/:contestId/plates.
func (pc *PlateController) AddPlateSet(c *gin.Context) {
	contestID := c.Param("contestId")

	var req plateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ps, err := pc.Plates.AddPlateSet(contestID, req.PlateWeight, req.Quantity, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ps)
}

// quantityRequest changes a plate set's available quantity.
type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity handles PUT /api/plates/:id/quantity.
func (pc *PlateController) UpdateQuantity(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.Plates.UpdateQuantity(c.Param("id"), req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListPlateSets handles GET /api/contests/:contestId/plates.
func (pc *PlateController) ListPlateSets(c *gin.Context) {
	sets, err := pc.Plates.ListPlateSets(c.Param("contestId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plateSets": sets})
}

// RemovePlateSet handles DELETE /api/plates/:id.
func (pc *PlateController) RemovePlateSet(c *gin.Context) {
	if err := pc.Plates.RemovePlateSet(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetPlateColors handles GET /api/contests/:contestId/plates/colors.
func (pc *PlateController) GetPlateColors(c *gin.Context) {
	colors, err := pc.Plates.PlateColors(c.Param("contestId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"colors": colors})
}

// GetBarWeights handles GET /api/contests/:contestId/bars.
func (pc *PlateController) GetBarWeights(c *gin.Context) {
	bars, err := pc.Plates.BarWeights(c.Param("contestId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bars)
}

// barWeightsRequest configures the contest's bars.
type barWeightsRequest struct {
	Mens   float64 `json:"mensBarWeight" binding:"required"`
	Womens float64 `json:"womensBarWeight" binding:"required"`
}

// UpdateBarWeights handles PUT /api/contests/:contestId/bars.
func (pc *PlateController) UpdateBarWeights(c *gin.Context) {
	var req barWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.Plates.UpdateBarWeights(c.Param("contestId"), req.Mens, req.Womens); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
