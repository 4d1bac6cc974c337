// Package config loads client configuration from the environment.
//
// A .env file in the working directory is honored when present, so local
// development does not need exported variables. Only the API key and
// username are required; everything else has defaults.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/trackfetch/lastfm-client/pkg/logging"
)

// Environment variable names.
const (
	EnvAPIKey   = "LASTFM_API_KEY"
	EnvUsername = "LASTFM_USER"
	EnvBaseURL  = "LASTFM_BASE_URL"
	EnvLogLevel = "LOG_LEVEL"
)

// Config is the environment-derived client configuration.
type Config struct {
	APIKey   string
	Username string
	BaseURL  string // empty means the production endpoint
	LogLevel logging.LogLevel
}

// Load reads the configuration from the environment, after loading a .env
// file if one exists. Missing required variables are reported together.
func Load() (Config, error) {
	// Ignore a missing .env; exported variables still apply.
	_ = godotenv.Load()

	cfg := Config{
		APIKey:   os.Getenv(EnvAPIKey),
		Username: os.Getenv(EnvUsername),
		BaseURL:  os.Getenv(EnvBaseURL),
		LogLevel: logging.LogLevel(getEnv(EnvLogLevel, string(logging.LevelInfo))),
	}

	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("%s is required", EnvAPIKey)
	}
	if cfg.Username == "" {
		return Config{}, fmt.Errorf("%s is required", EnvUsername)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
