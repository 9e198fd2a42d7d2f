// @title SmartPC Builder API
// @version 1.0
// @description Storefront backend for the SmartPC configurator
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/controllers/configurator_controller"
	"github.com/krystian2077/smartpc-builder/controllers/storefront/component_controller"
	"github.com/krystian2077/smartpc-builder/controllers/storefront/inquiry_controller"
	"github.com/krystian2077/smartpc-builder/controllers/storefront/preset_controller"
	"github.com/krystian2077/smartpc-builder/middleware"
	"github.com/krystian2077/smartpc-builder/routes"
	"github.com/krystian2077/smartpc-builder/services"
)

func init() {
	_ = godotenv.Load()
}

func corsConfig() cors.Config {
	allowedOrigins := []string{
		"http://localhost:3000",
		"http://localhost:3001",
	}
	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		allowedOrigins = append(allowedOrigins, strings.Split(extra, ",")...)
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = allowedOrigins
	cfg.AllowCredentials = true
	cfg.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token",
		"Authorization", "accept", "origin", "Cache-Control", "X-Requested-With",
	}
	cfg.AllowMethods = []string{"POST", "HEAD", "PATCH", "OPTIONS", "GET", "PUT", "DELETE"}
	return cfg
}

func main() {
	// Redis connection (sessions, rate limiting)
	config.ConnectRedis()

	// Wire services into the controllers
	catalogClient := services.NewCatalogClient(config.CatalogBaseURL())
	catalogService := services.NewCatalogService(catalogClient)
	sessionStore := services.NewSessionStore(config.RedisClient)

	component_controller.Init(catalogService)
	preset_controller.Init(catalogService)
	inquiry_controller.Init(catalogService)
	configurator_controller.Init(catalogService, sessionStore)

	router := gin.Default()
	router.Use(cors.New(corsConfig()))

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(120, time.Minute))

	routes.SetupStorefrontRoutes(api)
	routes.SetupConfiguratorRoutes(api)

	port := config.Port()
	log.Printf("🚀 SmartPC storefront backend listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
