package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"globetrotter/internal/catalog"
	"globetrotter/internal/config"
	"globetrotter/internal/database"
	"globetrotter/internal/logger"
	"globetrotter/internal/server"
	"globetrotter/internal/services"
	"globetrotter/internal/validator"

	_ "globetrotter/internal/docs" // Import swagger docs
)

// @title           GlobeTrotter API
// @version         1.0
// @description     GlobeTrotter lets travellers plan multi-city trips, attach activities to each stop, see the projected budget and share a read-only itinerary.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared key of the catalog service.

const shutdownTimeout = 15 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()

	registry := catalog.NewRegistry(db)
	if err := registry.Load(); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var bus *catalog.Bus
	if appConfig.RedisAddr != "" {
		client, err := catalog.NewRedisClient(catalog.RedisConfig{
			Addr:     appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer closeRedis(client)

		bus = catalog.NewBus(client, appConfig.CatalogChannel)
		listener, err := bus.Subscribe(ctx)
		if err != nil {
			return fmt.Errorf("failed to subscribe to catalog channel: %w", err)
		}
		defer listener.Close()
		go listener.Run(ctx, registry)
	} else {
		log.Info("REDIS_ADDR not set, catalog invalidation bus disabled")
	}

	validator.Register()

	deps := server.Deps{
		JWTSecret:       appConfig.JWTSecret,
		CatalogAdminKey: appConfig.CatalogAdminKey,
		Trips:           services.NewTripService(db, time.Now),
		Stops:           services.NewStopService(db, registry),
		Activities:      services.NewActivityService(db, registry),
		Budgets:         services.NewBudgetService(db),
		Public:          services.NewPublicTripService(db, time.Now),
		Audit:           services.NewAuditService(db),
		Catalog:         registry,
		Invalidator:     registry,
	}
	// A nil *Bus inside the interface would not compare equal to nil.
	if bus != nil {
		deps.Broadcaster = bus
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           server.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting GlobeTrotter API on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

func closeRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		logger.Get().Warnw("failed to close redis", "error", err)
	}
}
