package config

import (
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/skillswap/skillswap-cli/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given as strings like "15s".
type jsonConfig struct {
	BaseURL        string `json:"base_url"`
	RequestTimeout string `json:"request_timeout"`
	StoragePath    string `json:"storage_path"`
	PollInterval   string `json:"poll_interval"`
	Debug          *bool  `json:"debug"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// Absent fields keep their current values. Panics on unreadable or malformed
// files, same as a bad flag would.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	applyJSON(cfg, &jc)
}

func applyJSON(cfg *Config, jc *jsonConfig) {
	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.RequestTimeout != "" {
		if d, err := time.ParseDuration(jc.RequestTimeout); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if jc.PollInterval != "" {
		if d, err := time.ParseDuration(jc.PollInterval); err == nil {
			cfg.PollInterval = d
		}
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
