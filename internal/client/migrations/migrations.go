// Package migrations embeds the local sqlite schema applied by goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
