package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "asiadrive/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"asiadrive/internal/auth"
	"asiadrive/internal/cache"
	"asiadrive/internal/config"
	"asiadrive/internal/db"
	"asiadrive/internal/handler"
	"asiadrive/internal/repository"
	"asiadrive/internal/router"
	"asiadrive/internal/service"
)

// @title AsiaDrive Catalog API
// @version 1.0
// @description Dealership catalog with vehicle listings, purchase requests and shipment tracking.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Additive schema migration: creates missing tables and columns,
	// never drops existing ones.
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Fatalf("redis init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	carRepo := repository.NewCarRepository(gormDB)
	leadRepo := repository.NewLeadRepository(gormDB)
	trackingRepo := repository.NewTrackingRepository(gormDB)

	// Initialize auth components
	sessions := auth.NewSessionManager(cfg.SessionSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions, sessionStore)
	catalogService := service.NewCatalogService(carRepo, trackingRepo)
	leadService := service.NewLeadService(leadRepo)
	trackingService := service.NewTrackingService(trackingRepo, carRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	leadHandler := handler.NewLeadHandler(leadService)
	trackingHandler := handler.NewTrackingHandler(trackingService)

	// Register routes
	router.Register(
		e,
		sessions,
		sessionStore,
		userRepo,
		authHandler,
		catalogHandler,
		leadHandler,
		trackingHandler,
	)

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
