package config

import (
	"fmt"
	"os"
	"time"
)

// Store modes the CLI can run against.
const (
	StoreRemote = "remote"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds runtime settings for the SaveBank CLI. It is built once at
// startup and handed to the services that need it.
//
// Fields:
//   - ServerEndpointAddr: host:port of the store server (remote mode).
//   - Store: which store backend to use, one of StoreRemote, StoreSQLite, StoreMemory.
//   - LocalDatabasePath: sqlite file used in StoreSQLite mode.
//   - CollectionPath: store path under which save records live.
//   - TimeZone: IANA zone (or "Local") used to label records.
//   - OnlineCheckInterval: how often the CLI probes the store server.
//   - LogLevel: diagnostics level written to stderr.
type Config struct {
	ServerEndpointAddr  string
	Store               string
	LocalDatabasePath   string
	CollectionPath      string
	TimeZone            string
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.Store = StoreRemote
	c.LocalDatabasePath = "savebank.db"
	c.CollectionPath = "savedata"
	c.TimeZone = "Local"
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "info"
}

// Location resolves TimeZone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreRemote, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("time zone: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones. Invalid configuration panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	if err := cfg.validate(); err != nil {
		panic(err)
	}
	return cfg
}
