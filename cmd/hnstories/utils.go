package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pevans/hnstories/config"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses an int from environment variable or returns default.
// A set but unparsable value is an error.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", key, value)
	}
	return intVal, nil
}

// loadConfig loads configuration with precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file (~/.hnstories/config.yaml)
// 3. Default values (lowest priority)
func loadConfig() (*config.FileConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Continuing with defaults and environment variables...\n\n")
		cfg = config.Default()
	}

	cfg.API.BaseURL = getEnv("HNSTORIES_BASE_URL", cfg.API.BaseURL)
	cfg.API.Timeout = getEnv("HNSTORIES_TIMEOUT", cfg.API.Timeout)
	cfg.Log.Level = getEnv("HNSTORIES_LOG_LEVEL", cfg.Log.Level)

	concurrency, err := getEnvInt("HNSTORIES_CONCURRENCY", cfg.API.Concurrency)
	if err != nil {
		return nil, err
	}
	cfg.API.Concurrency = concurrency

	return cfg, nil
}
