package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"globetrotter/internal/catalog"
	"globetrotter/internal/config"
	"globetrotter/internal/database"
	"globetrotter/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	result, err := catalog.Seed(dbManager.DB())
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	logger.Get().Infow("Catalog seeded", "cities", result.Cities, "templates", result.Templates)

	if result.Cities == 0 && result.Templates == 0 {
		return nil
	}
	if cfg.RedisAddr == "" {
		logger.Get().Info("REDIS_ADDR not set, running API instances keep their catalog until restart")
		return nil
	}

	client, err := catalog.NewRedisClient(catalog.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return catalog.NewBus(client, cfg.CatalogChannel).Publish(ctx)
}
