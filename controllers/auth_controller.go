// Package controllers controllers/auth_controller.go
package controllers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"go-meet-scoring/logger"
	"go-meet-scoring/models"
)

var loadOfficialsFunc = LoadOfficials // Assign to a variable for easier testing

// ComparePasswords checks if the given password matches the hashed password
func ComparePasswords(hashedPassword, plainPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	return err == nil
}

// LoadOfficials loads officials credentials from the JSON file named
// by OFFICIALS_CREDS (default ./config/officials.json).
func LoadOfficials() (*models.OfficialsFile, error) {
	credPath := os.Getenv("OFFICIALS_CREDS")
	if credPath == "" {
		credPath = "./config/officials.json" // #nosec G101
	}

	data, err := os.ReadFile(credPath) // #nosec G304
	if err != nil {
		return nil, err
	}

	var officials models.OfficialsFile
	if err := json.Unmarshal(data, &officials); err != nil {
		return nil, err
	}
	return &officials, nil
}

// loginRequest is the login form/JSON payload.
type loginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// PerformLogin authenticates an official and stores them in the session.
func PerformLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	creds, err := loadOfficialsFunc()
	if err != nil {
		logger.Error.Printf("PerformLogin: failed to load officials credentials: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "credentials unavailable"})
		return
	}

	for _, official := range creds.Officials {
		if official.Username != req.Username {
			continue
		}
		if !ComparePasswords(official.Password, req.Password) {
			break
		}

		session := sessions.Default(c)
		session.Set("user", official.Username)
		session.Set("isAdmin", official.IsAdmin)
		if err := session.Save(); err != nil {
			logger.Error.Printf("PerformLogin: error saving session for %s: %v", official.Username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
			return
		}

		logger.Info.Printf("PerformLogin: official %s logged in", official.Username)
		c.JSON(http.StatusOK, gin.H{"username": official.Username, "isAdmin": official.IsAdmin})
		return
	}

	logger.Warn.Printf("PerformLogin: failed login attempt for %q", req.Username)
	c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
}

// Logout clears the official's session.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("user")
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: error clearing session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	if user != nil {
		logger.Info.Printf("Logout: official %v logged out", user)
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
