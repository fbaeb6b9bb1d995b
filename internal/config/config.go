// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// the server, the course dataset, and the Neo4j knowledge graph.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration
	StaticDir       string // Optional frontend directory served at / (empty = disabled)

	// Data Configuration
	DataPath string // Path to the course dataset JSON file

	// Neo4j Knowledge Graph Configuration
	Neo4jEnabled  bool
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
	Neo4jDatabase string // Empty = driver default database

	// Seeding Configuration
	SeedWorkers int // Concurrent upserts during bulk seeding

	// Sentry Configuration
	SentryDSN         string
	SentryEnvironment string
	SentrySampleRate  float64

	// Better Stack Configuration
	BetterStackToken    string
	BetterStackEndpoint string
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		// Server Configuration
		Port:            getEnv(EnvPort, "8000"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, 10*time.Second),
		StaticDir:       getEnv(EnvStaticDir, ""),

		// Data Configuration
		DataPath: getEnv(EnvDataPath, "data/courses.json"),

		// Neo4j Knowledge Graph Configuration
		Neo4jEnabled:  getBoolEnv(EnvNeo4jEnabled, true),
		Neo4jURI:      getEnv(EnvNeo4jURI, "bolt://localhost:7687"),
		Neo4jUser:     getEnv(EnvNeo4jUser, "neo4j"),
		Neo4jPassword: getEnv(EnvNeo4jPassword, "password"),
		Neo4jDatabase: getEnv(EnvNeo4jDatabase, ""),

		// Seeding Configuration
		SeedWorkers: getIntEnv(EnvSeedWorkers, 4),

		// Sentry Configuration
		SentryDSN:         getEnv(EnvSentryDSN, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),

		// Better Stack Configuration
		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}
	if c.DataPath == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvDataPath))
	}
	if c.Neo4jEnabled {
		if c.Neo4jURI == "" {
			errs = append(errs, fmt.Errorf("%s is required when Neo4j is enabled", EnvNeo4jURI))
		}
		if c.Neo4jUser == "" {
			errs = append(errs, fmt.Errorf("%s is required when Neo4j is enabled", EnvNeo4jUser))
		}
	}
	if c.SeedWorkers < 1 {
		errs = append(errs, errors.New("seed workers must be at least 1"))
	}

	return errors.Join(errs...)
}

// getEnv retrieves string environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
