package config

import (
	"flag"
	"os"
	"time"

	"github.com/skillswap/skillswap-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   base URL of the SkillSwap API
//	-s string   path to the local sqlite storage file
//	-t int      request timeout in seconds
//	-d          enable debug logging
//
// os.Args is filtered with flagx.FilterArgs so the config-file flags handled
// elsewhere do not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-s", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "u", cfg.BaseURL, "base URL of the SkillSwap API")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path to the local storage file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.Debug, "d", cfg.Debug, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
