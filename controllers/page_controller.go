// Package controllers controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-meet-scoring/logger"
	"go-meet-scoring/services"
)

// global config values shared by all controllers
var (
	ApplicationURL string
	WebsocketURL   string
)

// SetConfig updates the global controller configuration.
func SetConfig(appURL, wsURL string) {
	ApplicationURL = appURL
	WebsocketURL = wsURL
	logger.Info.Printf("SetConfig: Global config updated: ApplicationURL=%s, WebsocketURL=%s", appURL, wsURL)
}

// Health responds to health checks.
func Health(c *gin.Context) {
	logger.Debug.Println("Health: Health check requested")
	c.String(http.StatusOK, "OK")
}

// GetQRCode serves a PNG QR code linking to a contest's scoreboard.
func GetQRCode(c *gin.Context) {
	contestID := c.Query("contestId")
	if contestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contestId is required"})
		return
	}
	logger.Info.Printf("GetQRCode: Generating scoreboard QR code for contest=%s", contestID)

	qrBytes, err := services.GenerateScoreboardQR(contestID, 300)
	if err != nil {
		logger.Error.Printf("GetQRCode: Error generating QR code: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"qrcode.png\"")
	c.Data(http.StatusOK, "image/png", qrBytes)
}
