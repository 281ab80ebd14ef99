package main

import (
	"fmt"
	"log"

	"github.com/karmacrepes/whenwilldeniusthdie/config"
	"github.com/karmacrepes/whenwilldeniusthdie/handlers"
	"github.com/karmacrepes/whenwilldeniusthdie/middleware"
	"github.com/karmacrepes/whenwilldeniusthdie/models"
	"github.com/karmacrepes/whenwilldeniusthdie/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql db handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Idempotent schema migration, once at startup
	if err := models.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Redis is optional: without it the API serves uncached reads and the
	// live websocket feed is off.
	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, running without cache: %v", err)
		cache = services.DisabledCache()
	}
	defer cache.Close()

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))
	router.HandleMethodNotAllowed = true
	router.NoMethod(handlers.MethodNotAllowed)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"message": "Prophecy API is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	subs := handlers.NewSubmissionsHandler(db, cache)
	proph := handlers.NewProphecyHandler()
	stats := handlers.NewStatsHandler(db)

	api := router.Group("/api")
	{
		api.POST("/submissions", subs.Create)
		api.GET("/submissions", subs.List)
		api.GET("/prophecy", proph.Get)
		api.GET("/calendar", handlers.GetCalendar)
		api.GET("/stats", stats.GetStats)
	}
	router.GET("/ws/submissions", handlers.LiveSubmissions(cache))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
