// Package migrations embeds the record_keys schema for each supported driver.
package migrations

import "embed"

// FS holds one directory of golang-migrate SQL files per driver.
//
//go:embed postgresql/*.sql mysql/*.sql
var FS embed.FS
