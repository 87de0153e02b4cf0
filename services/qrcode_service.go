// services/qrcode_service.go
package services

import (
	"os"

	"github.com/skip2/go-qrcode"
)

// GenerateScoreboardQR creates a QR code pointing spectators at the
// public scoreboard for the given contest.
func GenerateScoreboardQR(contestID string, size int) ([]byte, error) {
	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080" // Default for local testing
	}

	png, err := qrcode.Encode(applicationURL+"/scoreboard?contestId="+contestID, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
