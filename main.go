// main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"go-meet-scoring/controllers"
	"go-meet-scoring/logger"
	"go-meet-scoring/middleware"
	"go-meet-scoring/services"
	"go-meet-scoring/store"
	"go-meet-scoring/websocket"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	logger.SetLogLevel(os.Getenv("APP_ENV"))

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	// Health check route for the load balancer
	router.GET("/health", controllers.Health)

	// Read configuration from environment variables
	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080"
	}
	websocketURL := os.Getenv("WEBSOCKET_URL")
	if websocketURL == "" {
		websocketURL = "ws://localhost:8080/scoreboard-updates"
	}
	controllers.SetConfig(applicationURL, websocketURL)

	// Initialize session store
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "dev-only-secret"
		log.Println("SESSION_SECRET unset; using development default")
	}
	sessionStore := cookie.NewStore([]byte(sessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400, // one meet day
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("meetsession", sessionStore))

	// Wire the storage layer and services
	st := store.NewMemStore()
	attemptService := services.NewAttemptService(st)
	resultService := services.NewResultService(st)
	plateService := services.NewPlateService(st)
	registrationService := services.NewRegistrationService(st)

	attemptController := controllers.NewAttemptController(attemptService, resultService)
	stateController := controllers.NewStateController(attemptService)
	resultController := controllers.NewResultController(resultService)
	plateController := controllers.NewPlateController(plateService)
	registrationController := controllers.NewRegistrationController(registrationService)

	// Public routes
	router.POST("/login", controllers.PerformLogin)
	router.GET("/logout", controllers.Logout)
	router.GET("/qrcode", controllers.GetQRCode)

	// Scoreboard websocket feed
	router.GET("/scoreboard-updates", func(c *gin.Context) {
		websocket.ServeWs(c.Writer, c.Request)
	})

	api := router.Group("/api")
	{
		// Read routes are open; the scoreboard polls them unauthenticated
		api.GET("/contests/:contestId/state", stateController.GetState)
		api.GET("/contests/:contestId/queue", attemptController.GetQueue)
		api.GET("/contests/:contestId/current-attempt", attemptController.GetCurrentAttempt)
		api.GET("/contests/:contestId/attempts", attemptController.ListByContest)
		api.GET("/contests/:contestId/rankings/:type", resultController.GetRanking)
		api.GET("/contests/:contestId/registrations", registrationController.ListByContest)
		api.GET("/contests/:contestId/plates", plateController.ListPlateSets)
		api.GET("/contests/:contestId/plates/loading", plateController.CalculateLoading)
		api.GET("/contests/:contestId/plates/colors", plateController.GetPlateColors)
		api.GET("/contests/:contestId/bars", plateController.GetBarWeights)
		api.GET("/registrations/:id/attempts", attemptController.ListByRegistration)
		api.GET("/registrations/:id/result", resultController.GetResult)

		// Mutations require a logged-in official
		official := api.Group("/", middleware.AuthRequired)
		{
			official.POST("/competitors", registrationController.CreateCompetitor)
			official.POST("/registrations", registrationController.Register)
			official.POST("/attempts/weight", attemptController.RecordWeight)
			official.POST("/attempts/:id/judge", attemptController.Judge)
			official.DELETE("/attempts/:id", attemptController.Delete)
			official.PUT("/contests/:contestId/current-attempt", attemptController.SetCurrentAttempt)
			official.DELETE("/contests/:contestId/current-attempt", attemptController.ClearCurrentAttempt)
			official.PUT("/contests/:contestId/lift", stateController.SetCurrentLift)
			official.POST("/contests/:contestId/recalculate", resultController.Recalculate)
		}

		// Admin-only surfaces
		admin := api.Group("/", middleware.AuthRequired, middleware.AdminRequired())
		{
			admin.PUT("/contests/:contestId/status", stateController.TransitionStatus)
			admin.PUT("/registrations/:id/disqualification", resultController.SetDisqualification)
			admin.POST("/contests/:contestId/plates", plateController.AddPlateSet)
			admin.PUT("/plates/:id/quantity", plateController.UpdateQuantity)
			admin.DELETE("/plates/:id", plateController.RemovePlateSet)
			admin.PUT("/contests/:contestId/bars", plateController.UpdateBarWeights)
		}
	}

	// Start the WebSocket fan-out
	go websocket.HandleMessages()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
