package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"clinic-registry-server/internal/config"
	"clinic-registry-server/internal/middleware"
	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/routes"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load environment variables; a missing .env is fine in
	// containerized deployments.
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, relying on environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Error loading config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	log := logger.WithField("service", "clinic-registry")

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Initialize Gin router
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(log))

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, db, cfg, log)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Infof("Server running on port %s", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
