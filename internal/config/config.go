package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	DBDSN        string
}

// GatewayConfig holds the configuration for the edge gateway binary.
type GatewayConfig struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	ServerURL    string
}

// Load loads the main service configuration from .env (optional) and
// environment variables.
func Load() (*Config, error) {
	loadDotenv()

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == prodString

	// HTTP listen address (default: :9090)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":9090")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	return cfg, nil
}

// LoadGateway loads the gateway configuration from .env (optional) and
// environment variables.
func LoadGateway() (*GatewayConfig, error) {
	loadDotenv()

	cfg := &GatewayConfig{}

	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == prodString

	// Gateway HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("GATEWAY_ADDR", ":8080")

	// Base URL of the main service is required
	cfg.ServerURL = os.Getenv("SHAREIT_SERVER_URL")
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("SHAREIT_SERVER_URL is required")
	}

	return cfg, nil
}

// loadDotenv loads the .env file if it exists.
func loadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
