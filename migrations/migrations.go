// Package migrations embeds the SQL schema migrations, one directory per dialect.
package migrations

import "embed"

// FS holds postgres/*.sql and mysql/*.sql.
//
//go:embed postgres/*.sql mysql/*.sql
var FS embed.FS
