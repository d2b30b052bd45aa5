// Package config loads runtime settings for the SkillSwap CLI.
//
// Sources are layered, later ones override earlier ones:
//
//	defaults -> .env / environment -> JSON file (-c/-config) -> flags
package config

import "time"

// Config holds runtime settings for the SkillSwap CLI.
type Config struct {
	// BaseURL is the root of the SkillSwap REST API.
	BaseURL string
	// RequestTimeout bounds a single API round trip.
	RequestTimeout time.Duration
	// StoragePath is the sqlite file for local session state. Empty means
	// in-memory only: nothing survives the process.
	StoragePath string
	// PollInterval is how often the mentor notification poller runs.
	PollInterval time.Duration
	// Debug enables debug-level logging.
	Debug bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.StoragePath = "skillswap.db"
	c.PollInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
