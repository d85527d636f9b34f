// Package config loads runtime configuration for the SaveBank CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml/.yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the store server
//	-s string   store backend: remote, sqlite or memory
//	-f string   sqlite database file (sqlite store)
//	-p string   collection path
//	-z string   time zone for record labels
//	-i int      online status check interval (seconds)
//	-l string   log level
//
// # File schema
//
// Intervals use timex.Duration, so they may be strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "store": "remote",
//	  "local_database_path": "savebank.db",
//	  "collection_path": "savedata",
//	  "time_zone": "Europe/Riga",
//	  "online_check_interval": "3s",
//	  "log_level": "info"
//	}
//
// Environment variables are not consulted.
package config
