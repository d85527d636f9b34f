package config

import (
	"github.com/dmitrijs2005/savebank/internal/cfgfile"
	"github.com/dmitrijs2005/savebank/internal/flagx"
)

// fileConfig is the on-disk shape of Config. Keys missing from the file
// leave the current value untouched.
type fileConfig struct {
	EndpointAddrGRPC    *string `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	EndpointAddrMetrics *string `json:"endpoint_addr_metrics" yaml:"endpoint_addr_metrics"`
	Backend             *string `json:"backend" yaml:"backend"`
	DatabaseDSN         *string `json:"database_dsn" yaml:"database_dsn"`
	S3RootUser          *string `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword      *string `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket            *string `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region            *string `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint      *string `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	LogLevel            *string `json:"log_level" yaml:"log_level"`
}

// parseFile loads the file named by -c/-config into config. A missing or
// malformed file panics.
func parseFile(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	var fc fileConfig
	if err := cfgfile.Decode(path, &fc); err != nil {
		panic(err)
	}

	for _, f := range []struct {
		dst *string
		src *string
	}{
		{&config.EndpointAddrGRPC, fc.EndpointAddrGRPC},
		{&config.EndpointAddrMetrics, fc.EndpointAddrMetrics},
		{&config.Backend, fc.Backend},
		{&config.DatabaseDSN, fc.DatabaseDSN},
		{&config.S3RootUser, fc.S3RootUser},
		{&config.S3RootPassword, fc.S3RootPassword},
		{&config.S3Bucket, fc.S3Bucket},
		{&config.S3Region, fc.S3Region},
		{&config.S3BaseEndpoint, fc.S3BaseEndpoint},
		{&config.LogLevel, fc.LogLevel},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
}
