// Package migrations embeds the SQL schema for the durable record maps.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
