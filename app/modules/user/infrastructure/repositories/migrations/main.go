package usermigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the users schema history.
var Migrations = migrate.NewMigrations()

func init() {
	// IDs are derived from each migration's file name.
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
