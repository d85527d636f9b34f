package config

import (
	"github.com/dmitrijs2005/savebank/internal/cfgfile"
	"github.com/dmitrijs2005/savebank/internal/flagx"
	"github.com/dmitrijs2005/savebank/internal/timex"
)

// fileConfig mirrors Config for file decoding. Pointer fields tell an
// absent key apart from an empty one, so a partial file only overrides
// what it names.
type fileConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	Store               *string         `json:"store" yaml:"store"`
	LocalDatabasePath   *string         `json:"local_database_path" yaml:"local_database_path"`
	CollectionPath      *string         `json:"collection_path" yaml:"collection_path"`
	TimeZone            *string         `json:"time_zone" yaml:"time_zone"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	LogLevel            *string         `json:"log_level" yaml:"log_level"`
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// parseFile overlays cfg with the file named by -c/-config in args. Without
// such a flag it does nothing. Read and decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	var fc fileConfig
	if err := cfgfile.Decode(path, &fc); err != nil {
		panic(err)
	}

	setIf(&cfg.ServerEndpointAddr, fc.ServerEndpointAddr)
	setIf(&cfg.Store, fc.Store)
	setIf(&cfg.LocalDatabasePath, fc.LocalDatabasePath)
	setIf(&cfg.CollectionPath, fc.CollectionPath)
	setIf(&cfg.TimeZone, fc.TimeZone)
	setIf(&cfg.LogLevel, fc.LogLevel)
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
}
