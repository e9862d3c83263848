package main

import (
	"log"

	"socratia/backend/config"
	"socratia/backend/gemini"
	"socratia/backend/middleware"
	"socratia/backend/routes"
	"socratia/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Initialize AI client
	ai, err := gemini.NewClient(cfg)
	if err != nil {
		log.Fatalf("Error initializing Gemini client: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, ai, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
