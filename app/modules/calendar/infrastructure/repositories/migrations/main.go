package calendarmigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the calendar schema history.
var Migrations = migrate.NewMigrations()

func init() {
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
