package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jobtrackhq/jobtrack-go/internal/api/middleware"
	"github.com/jobtrackhq/jobtrack-go/internal/api/routes"
	"github.com/jobtrackhq/jobtrack-go/internal/config"
	"github.com/jobtrackhq/jobtrack-go/internal/config/db"
)

// @title Job Tracker API
// @version 1.0
// @description Tracks job applications per user with status history and role-scoped access.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r)

	log.Printf("Server running on port %s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal(err)
	}
}
