package config

import (
	"flag"
	"os"
	"time"

	"github.com/RANGASWAMY-MK/my-space/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   path to the session database file (default from Config)
//	-n int      notification auto-dismiss interval in seconds (default from Config)
//	-l bool     simulate repository latency (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-n", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.SessionDBPath, "s", cfg.SessionDBPath, "path to the session database file")
	notificationTTL := fs.Int("n", int(cfg.NotificationTTL.Seconds()), "notification auto-dismiss interval (in seconds)")
	fs.BoolVar(&cfg.SimulateLatency, "l", cfg.SimulateLatency, "simulate repository latency")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NotificationTTL = time.Duration(*notificationTTL) * time.Second
}
