package clubmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the clubs schema history.
var Migrations = migrate.NewMigrations()

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
