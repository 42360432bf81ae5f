// Package config loads demo configuration from environment variables, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	MenuPath       string
	TickIntervalMs int
	AsyncWorkers   int
	RunTicks       int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		MenuPath:    getEnv("MENU_PATH", ConfigPathDefaultMenu),
	}

	var err error
	if cfg.TickIntervalMs, err = getEnvInt("TICK_INTERVAL_MS", DefaultTickIntervalMs); err != nil {
		return nil, err
	}
	if cfg.AsyncWorkers, err = getEnvInt("ASYNC_WORKERS", DefaultAsyncWorkers); err != nil {
		return nil, err
	}
	if cfg.RunTicks, err = getEnvInt("RUN_TICKS", DefaultRunTicks); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}
