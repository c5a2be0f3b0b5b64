package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/attila122/hyratryggt/internal/config"
	"github.com/attila122/hyratryggt/internal/handlers"
	"github.com/attila122/hyratryggt/internal/logger"
	"github.com/attila122/hyratryggt/internal/middleware"
	"github.com/attila122/hyratryggt/internal/monitoring"
	"github.com/attila122/hyratryggt/internal/service"
	"github.com/attila122/hyratryggt/internal/store"
	"github.com/attila122/hyratryggt/internal/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	if err := utils.EnsureJWTReady(); err != nil {
		logger.Error("JWT configuration error:", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadsPath, 0o755); err != nil {
		logger.Errorf("Failed to create uploads directory %s: %v", cfg.UploadsPath, err)
		os.Exit(1)
	}

	users := store.NewUserStore()
	listings := store.NewListingStore()
	leads := store.NewLeadStore()
	store.SeedListings(listings)

	authService := service.NewAuthService(users)
	listingService := service.NewListingService(listings)
	leadService := service.NewLeadService(leads, listings)

	photoIntake := &handlers.PhotoIntake{
		UploadsPath:    cfg.UploadsPath,
		MaxUploadBytes: cfg.MaxUploadBytes,
		MaxPhotoCount:  cfg.MaxPhotoCount,
	}

	authHandler := handlers.NewAuthHandler(authService)
	listingHandler := handlers.NewListingHandler(listingService, photoIntake)
	leadHandler := handlers.NewLeadHandler(leadService)
	monitoringHandler := handlers.NewMonitoringHandler(
		monitoring.NewService(time.Now(), users, listings, leads, cfg.UploadsPath),
		cfg.MonitoringAPIKey,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(monitoring.RequestMetricsMiddleware())
	router.Use(cors.Default())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/health", handlers.HealthCheck)
	router.Static("/uploads", cfg.UploadsPath)

	api := router.Group("/api")
	{
		api.GET("/status", handlers.Status)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/listings", listingHandler.GetListings)
		api.GET("/listings/:id", listingHandler.GetListing)

		api.POST("/quick-register", leadHandler.QuickRegister)

		monitor := api.Group("/monitoring")
		{
			monitor.GET("/status", monitoringHandler.MonitorStatus)
			monitor.GET("/storage", monitoringHandler.MonitorStorage)
			monitor.GET("/snapshot", monitoringHandler.MonitorSnapshot)
		}

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/auth/me", authHandler.Me)

			authed.POST("/listings", listingHandler.CreateListing)
			authed.PUT("/listings/:id", listingHandler.UpdateListing)
			authed.DELETE("/listings/:id", listingHandler.DeleteListing)
			authed.GET("/user/listings", listingHandler.GetUserListings)

			authed.GET("/quick-registrations", leadHandler.GetQuickRegistrations)
			authed.POST("/contact/:listingId", leadHandler.Contact)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Hyratryggt API starting on", addr)
	if err := router.Run(addr); err != nil {
		logger.Error("Server failed to start:", err)
		os.Exit(1)
	}
}
