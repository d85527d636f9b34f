package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/savebank/internal/flagx"
)

// parseFlags overlays cfg with the flags listed in the package docs. Other
// flags in args are ignored. A malformed value panics.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-f", "-p", "-z", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the store server")
	fs.StringVar(&cfg.Store, "s", cfg.Store, "store backend: remote, sqlite or memory")
	fs.StringVar(&cfg.LocalDatabasePath, "f", cfg.LocalDatabasePath, "sqlite database file")
	fs.StringVar(&cfg.CollectionPath, "p", cfg.CollectionPath, "collection path")
	fs.StringVar(&cfg.TimeZone, "z", cfg.TimeZone, "time zone for record labels")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
