// @title Fashion Sub001 API
// @version 1.0
// @description Fashion storefront backend with admin console
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/git-senpai/fashion-sub001/config"
	"github.com/git-senpai/fashion-sub001/middleware"
	"github.com/git-senpai/fashion-sub001/routes/cms_routes"
	"github.com/git-senpai/fashion-sub001/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (rate limiting)
	config.ConnectRedis()
	defer config.CloseRedis()

	// Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Admin auth and management (login is public, the rest is protected)
	cms_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Admin console routes (auth + rate limited)
	adminGroup := api.Group("/admin")
	adminGroup.Use(
		middleware.RateLimiter(100, time.Minute),
		middleware.AdminAuthMiddleware(),
	)

	cms_routes.SetupDashboardRoutes(adminGroup)
	log.Println("✅ Admin dashboard routes registered")

	fmt.Println("🚀 Server is running on http://localhost:8081")
	if err := router.Run(":8081"); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
