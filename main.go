package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"learnhub-web/config"
	"learnhub-web/middleware"
	"learnhub-web/platform"
	"learnhub-web/routes"
	"learnhub-web/session"
	"learnhub-web/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Platform API client: the only place domain data comes from.
	api := platform.NewClient(cfg.PlatformURL, time.Duration(cfg.RequestTimeout)*time.Second)

	// Session manager for the signed session cookie.
	sessions := session.NewManager(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, api, sessions, cfg)

	if !cfg.GoogleEnabled() {
		logger.Println("Google sign-in is not configured; federated login disabled")
	}

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
