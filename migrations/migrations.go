// Package migrations embeds the SQL schema so both the binary and the
// test suites can run against the same database layout.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
