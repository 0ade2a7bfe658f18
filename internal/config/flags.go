package config

import (
	"flag"
	"os"
	"time"

	"github.com/danakir/planvite/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    base URL of the backend API (default from Config)
//	-t int       request timeout in seconds (default from Config)
//	-ttl int     token retention window in hours (default from Config)
//	-d string    path of the local credential database
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-ttl", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	tokenTTL := fs.Int("ttl", int(cfg.TokenTTL.Hours()), "token retention window (in hours)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local credential database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.TokenTTL = time.Duration(*tokenTTL) * time.Hour
}
