package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is merged first without clobbering real environment
// variables; a missing file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SKILLSWAP_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SKILLSWAP_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("SKILLSWAP_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("SKILLSWAP_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PollInterval = d
		}
	}
	if v := os.Getenv("SKILLSWAP_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
