package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT access tokens are issued by the auth service; we only verify them.
	JWTSecret string

	// Redis carries catalog invalidation events between API instances.
	// An empty RedisAddr disables the bus.
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	CatalogChannel string

	// CatalogAdminKey guards the catalog invalidation endpoint used by the
	// catalog service. Empty disables the endpoint.
	CatalogAdminKey string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "globetrotter"),
		DBPassword: getEnv("DB_PASSWORD", "globetrotter"),
		DBName:     getEnv("DB_NAME", "globetrotter"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Redis
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		CatalogChannel: getEnv("CATALOG_CHANNEL", "catalog:invalidate"),

		CatalogAdminKey: getEnv("CATALOG_ADMIN_KEY", ""),
	}

	dbStr := getEnv("REDIS_DB", "0")
	redisDB, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Printf("Warning: invalid REDIS_DB value '%s', falling back to 0\n", dbStr)
		redisDB = 0
	}
	config.RedisDB = redisDB

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
