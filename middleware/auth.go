// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go-meet-scoring/logger"
)

// -------------- authentication middleware --------------

// AuthRequired is a middleware that ensures an official is logged in.
// How it works:
// - Retrieves the session from the request context.
// - Checks if the "user" session variable is set.
// - If no user is found, responds 401 and aborts execution.
// - Otherwise, the request proceeds.
// Usage:
//
//	router.Use(AuthRequired)
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("user")

	// block request if user session is missing
	if user == nil {
		logger.Warn.Printf("AuthRequired: no user found in session for %s", c.FullPath())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		c.Abort()
		return
	}

	logger.Debug.Println("[AuthRequired] User authenticated - proceeding with request")
	c.Next()
}
