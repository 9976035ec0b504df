// Package config provides application configuration management using
// environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/parsascontentcorner/discordstate/pkg/entities"
)

// Config holds all configuration for the replay tool and the library
// defaults it wires up.
type Config struct {
	Logging LoggingConfig
	Cache   CacheConfig
	Replay  ReplayConfig
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string
	Format string
}

// CacheConfig holds entity-cache behaviour configuration.
type CacheConfig struct {
	Policy entities.CachePolicy
}

// ReplayConfig holds configuration for the replay binary.
type ReplayConfig struct {
	File string
}

// Load loads configuration from environment variables. It optionally
// loads from a .env file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Logging = LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "console"),
	}

	policyName := getEnv("CACHE_POLICY", "aggressive")
	policy, ok := entities.ParseCachePolicy(policyName)
	if !ok {
		return nil, fmt.Errorf("invalid CACHE_POLICY: %q", policyName)
	}
	cfg.Cache = CacheConfig{Policy: policy}

	cfg.Replay = ReplayConfig{
		File: getEnv("REPLAY_FILE", "events.jsonl"),
	}

	return cfg, nil
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
