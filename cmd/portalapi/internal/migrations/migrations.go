// Package migrations holds the portal schema migrations.
package migrations

import "github.com/uptrace/bun/migrate"

// Migrations is the registry every migration file adds itself to.
var Migrations = migrate.NewMigrations()
