package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Storage
	DataDir string

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration

	// Applications
	AllowReapplication bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		DataDir:            getEnv("DATA_DIR", "./data"),
		SessionSecret:      getEnv("SESSION_SECRET", ""),
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_HOURS", 7*24)) * time.Hour,
		AllowReapplication: getEnvBool("ALLOW_REAPPLICATION", true),
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
