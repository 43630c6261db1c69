// Package migrations embeds the goose SQL migrations of the report store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Dir is the directory of FS holding the migrations.
const Dir = "."
